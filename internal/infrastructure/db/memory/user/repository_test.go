package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "user-records-api/internal/domain/user"
)

func someUser(email string, birthDate time.Time) domain.User {
	return domain.User{
		Email:       email,
		FirstName:   "John",
		LastName:    "Doe",
		BirthDate:   birthDate,
		Address:     "Kyiv city",
		PhoneNumber: "+380912345678",
	}
}

func TestRepository_CreateUser_AssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	seen := make(map[domain.ID]struct{})
	for i := 0; i < 10; i++ {
		u, err := r.CreateUser(ctx, someUser("a@example.com", date(2000, time.January, 1)))
		require.NoError(t, err)
		require.NotZero(t, u.ID)

		_, dup := seen[u.ID]
		require.False(t, dup, "id %d assigned twice", u.ID)
		seen[u.ID] = struct{}{}
	}
}

func TestRepository_CreateUser_FetchRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	in := someUser("john.doe@example.com", date(1995, time.December, 1))
	created, err := r.CreateUser(ctx, in)
	require.NoError(t, err)

	got, err := r.FetchUserByID(ctx, created.ID)
	require.NoError(t, err)

	want := in
	want.ID = created.ID
	assert.Equal(t, &want, got)
}

func TestRepository_FetchUserByID_NotFound(t *testing.T) {
	r := NewRepository()

	_, err := r.FetchUserByID(context.Background(), 404)
	var nfe *domain.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, domain.ID(404), nfe.ID)
	assert.Equal(t, "User not found with id: 404", nfe.Error())
}

func TestRepository_ReplaceUser_KeepsID(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	created, err := r.CreateUser(ctx, someUser("old@example.com", date(2000, time.January, 1)))
	require.NoError(t, err)

	replacement := someUser("new@example.com", date(1990, time.June, 15))
	replacement.FirstName = "Jane"
	// the id inside the replacement payload must be ignored
	replacement.ID = 9999

	updated, err := r.ReplaceUser(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Jane", updated.FirstName)

	got, err := r.FetchUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestRepository_ReplaceUser_NotFound(t *testing.T) {
	_, err := NewRepository().ReplaceUser(context.Background(), 1, someUser("a@example.com", date(2000, time.January, 1)))
	var nfe *domain.NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestRepository_PatchUser_OnlyEmailLeavesRestUntouched(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	created, err := r.CreateUser(ctx, someUser("old@example.com", date(2000, time.January, 1)))
	require.NoError(t, err)

	email := "patched@example.com"
	patched, err := r.PatchUser(ctx, created.ID, domain.Patch{Email: &email})
	require.NoError(t, err)

	want := *created
	want.Email = email
	assert.Equal(t, &want, patched)
}

func TestRepository_PatchUser_NotFound(t *testing.T) {
	email := "a@example.com"
	_, err := NewRepository().PatchUser(context.Background(), 7, domain.Patch{Email: &email})
	var nfe *domain.NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestRepository_DeleteUser_Idempotence(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	created, err := r.CreateUser(ctx, someUser("a@example.com", date(2000, time.January, 1)))
	require.NoError(t, err)

	deleted, err := r.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, deleted)

	var nfe *domain.NotFoundError

	_, err = r.FetchUserByID(ctx, created.ID)
	require.ErrorAs(t, err, &nfe)

	// repeated delete keeps failing the same way
	for i := 0; i < 2; i++ {
		_, err = r.DeleteUser(ctx, created.ID)
		require.ErrorAs(t, err, &nfe)
	}
}

func TestRepository_FetchUsers_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	emails := []string{"c@example.com", "a@example.com", "b@example.com"}
	for _, e := range emails {
		_, err := r.CreateUser(ctx, someUser(e, date(2000, time.January, 1)))
		require.NoError(t, err)
	}

	us, err := r.FetchUsers(ctx)
	require.NoError(t, err)
	require.Len(t, us, len(emails))
	for idx, u := range us {
		assert.Equal(t, emails[idx], u.Email)
	}
}

func TestRepository_FetchUsersByBirthDateRange(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	for _, bd := range []time.Time{
		date(2000, time.December, 30),
		date(2002, time.November, 3),
		date(2004, time.May, 25),
	} {
		_, err := r.CreateUser(ctx, someUser("u@example.com", bd))
		require.NoError(t, err)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want []time.Time
	}{
		{
			name: "middle of the range",
			from: date(2001, time.January, 1),
			to:   date(2003, time.January, 1),
			want: []time.Time{date(2002, time.November, 3)},
		},
		{
			name: "bounds are inclusive",
			from: date(2000, time.December, 30),
			to:   date(2004, time.May, 25),
			want: []time.Time{
				date(2000, time.December, 30),
				date(2002, time.November, 3),
				date(2004, time.May, 25),
			},
		},
		{
			name: "no match",
			from: date(1980, time.January, 1),
			to:   date(1990, time.January, 1),
			want: nil,
		},
		{
			name: "single day",
			from: date(2002, time.November, 3),
			to:   date(2002, time.November, 3),
			want: []time.Time{date(2002, time.November, 3)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			us, err := r.FetchUsersByBirthDateRange(ctx, tt.from, tt.to)
			require.NoError(t, err)

			var got []time.Time
			for _, u := range us {
				got = append(got, u.BirthDate)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_FetchUsersByBirthDateRange_SkipsZeroBirthDate(t *testing.T) {
	ctx := context.Background()
	r := NewRepository()

	_, err := r.CreateUser(ctx, domain.User{Email: "nodate@example.com", FirstName: "N", LastName: "D"})
	require.NoError(t, err)

	us, err := r.FetchUsersByBirthDateRange(ctx, date(1900, time.January, 1), date(2100, time.January, 1))
	require.NoError(t, err)
	assert.Empty(t, us)
}

func TestRepository_SeedDemo(t *testing.T) {
	r := NewRepository()
	r.SeedDemo()

	us, err := r.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, us, 5)
	assert.Equal(t, "email1@email.com", us[0].Email)
	assert.Equal(t, date(2000, time.December, 30), us[0].BirthDate)
}

package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"user-records-api/internal/application/ports"
	domain "user-records-api/internal/domain/user"
	"user-records-api/internal/infrastructure/mq"
	"user-records-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// FindUsersByBirthDateRange trusts the caller to have checked from <= to.
func (us *UserService) FindUsersByBirthDateRange(ctx context.Context, from, to time.Time) (domain.Users, error) {
	users, err := us.userRepository.FetchUsersByBirthDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.emit(http.MethodPost, uRet)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.ID, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.ReplaceUser(ctx, id, u)
	if err != nil {
		return nil, err
	}

	us.emit(http.MethodPut, uRet)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) PatchUser(ctx context.Context, id domain.ID, p domain.Patch) (*domain.User, error) {
	uRet, err := us.userRepository.PatchUser(ctx, id, p)
	if err != nil {
		return nil, err
	}

	us.emit(http.MethodPatch, uRet)
	us.mCounter.WithLabelValues("user_patched_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	uRet, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	us.emit(http.MethodDelete, uRet)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) emit(method string, u *domain.User) {
	if u == nil {
		return
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  int64(u.ID),
		Payload: user.ToResponseUser(*u),
	}
}

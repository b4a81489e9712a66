package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-records-api/internal/application/ports"
	domain "user-records-api/internal/domain/user"
	"user-records-api/internal/interface/api/rest/dto/user"
	"user-records-api/internal/interface/api/rest/validator"
)

// errPrefix marks every error message the API returns. The controller
// is the single place where errors turn into status codes.
const errPrefix = "ERROR: "

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
	minAgeYears int
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	minAgeYears int,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
		minAgeYears: minAgeYears,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.PUT(RouteUser, uc.UpdateUserHandler)
	r.PATCH(RouteUser, uc.PatchUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	return uc
}

func errorBody(msg string) gin.H {
	return gin.H{"error": errPrefix + msg}
}

// fail translates a service error: NotFoundError maps to 404,
// everything else to 500 with the cause surfaced, never suppressed.
func (uc *UserController) fail(c *gin.Context, op string, err error) {
	var nfe *domain.NotFoundError
	if errors.As(err, &nfe) {
		c.JSON(http.StatusNotFound, errorBody(nfe.Error()))
		return
	}

	uc.logger.Error(op+" error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
}

// GetUsersHandler lists every user, or searches by birth date range
// when both the from and to query params are supplied.
func (uc *UserController) GetUsersHandler(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")

	switch {
	case from != "" && to != "":
		fromDate, err := time.Parse(user.DateLayout, from)
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		toDate, err := time.Parse(user.DateLayout, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
			return
		}
		if fromDate.After(toDate) {
			c.JSON(http.StatusBadRequest, errorBody("'From' date cannot be after 'To' date"))
			return
		}

		users, err := uc.userService.FindUsersByBirthDateRange(c.Request.Context(), fromDate, toDate)
		if err != nil {
			uc.fail(c, "FindUsersByBirthDateRange()", err)
			return
		}
		c.JSON(http.StatusOK, user.ResponseData{Data: user.ToResponseUsers(users)})

	case from != "" || to != "":
		c.JSON(http.StatusBadRequest, errorBody("Both 'from' and 'to' dates are required for filtering"))

	default:
		users, err := uc.userService.FindUsers(c.Request.Context())
		if err != nil {
			uc.fail(c, "FindUsers()", err)
			return
		}
		c.JSON(http.StatusOK, user.ResponseData{Data: user.ToResponseUsers(users)})
	}
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ParseUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.fail(c, "FindUserByID()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	if reasons := validator.ValidateUser(uDomain, uc.minAgeYears); reasons != nil {
		c.JSON(http.StatusBadRequest, errorBody(strings.Join(reasons, "; ")))
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), uDomain)
	if err != nil {
		uc.fail(c, "CreateUser()", err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, err := validator.ParseUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	var req user.Request
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}
	if reasons := validator.ValidateUser(uDomain, uc.minAgeYears); reasons != nil {
		c.JSON(http.StatusBadRequest, errorBody(strings.Join(reasons, "; ")))
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), id, uDomain)
	if err != nil {
		uc.fail(c, "UpdateUser()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

// PatchUserHandler overwrites only the supplied fields. By design the
// patched fields skip the admission checks; see ValidateUser.
func (uc *UserController) PatchUserHandler(c *gin.Context) {
	id, err := validator.ParseUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	var req user.PatchRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	pDomain, err := user.ToDomainPatch(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	u, err := uc.userService.PatchUser(c.Request.Context(), id, pDomain)
	if err != nil {
		uc.fail(c, "PatchUser()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ParseUserID(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	if err = uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		uc.fail(c, "DeleteUser()", err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/user-task-api/internal/dto"
	apierrors "github.com/yukikurage/user-task-api/internal/errors"
	"github.com/yukikurage/user-task-api/internal/services"
	"github.com/yukikurage/user-task-api/internal/utils"
)

// UserHandler serves the /user routes.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers returns all active users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListActiveUsers(c.Request.Context(), utils.GetPaginationParams(c))
	if err != nil {
		respondServiceError(c, err, msgNoUserFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// GetUser returns the user identified by the user_id query parameter
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, msgNoUserFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// CreateUser creates a new user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, msgInvalidPayload, err.Error())
		return
	}

	if _, err := h.userService.CreateUser(c.Request.Context(), req.ToInput()); err != nil {
		respondServiceError(c, err, msgNoUserFound)
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{
		StatusCode:  http.StatusCreated,
		Transaction: "Successful",
	})
}

// UpdateUser replaces the first name, last name and age of a user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, msgInvalidPayload, err.Error())
		return
	}

	if err := h.userService.UpdateUser(c.Request.Context(), userID, req.ToInput()); err != nil {
		respondServiceError(c, err, msgNoUserFound)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		StatusCode:  http.StatusOK,
		Transaction: "User update is successful",
	})
}

// DeleteUser deletes the user identified by the user_id query parameter along with its tasks
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, ok := queryID(c, "user_id")
	if !ok {
		return
	}
	h.deleteUser(c, userID, msgNoUserFound, "User delete is successful")
}

// DeleteUserWithTasks deletes the user identified by the path parameter along with its tasks
func (h *UserHandler) DeleteUserWithTasks(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	h.deleteUser(c, userID, msgUserNotFound, "User and associated tasks deleted successfully!")
}

func (h *UserHandler) deleteUser(c *gin.Context, userID uint64, notFoundMessage, transaction string) {
	result, err := h.userService.DeleteUser(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, notFoundMessage)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteUserResponse{
		StatusResponse: dto.StatusResponse{
			StatusCode:  http.StatusOK,
			Transaction: transaction,
		},
		DeletedTasks: result.DeletedTasks,
	})
}

// ListUserTasks returns every task owned by a user
func (h *UserHandler) ListUserTasks(c *gin.Context) {
	userID, ok := paramID(c, "user_id")
	if !ok {
		return
	}

	tasks, err := h.userService.ListUserTasks(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, msgNoUserFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

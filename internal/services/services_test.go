package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/user-task-api/internal/database"
	"github.com/yukikurage/user-task-api/internal/models"
	"github.com/yukikurage/user-task-api/internal/repository"
	"github.com/yukikurage/user-task-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ServiceTestSuite runs UserService and TaskService against an in-memory SQLite database
type ServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *gorm.DB
	userService *UserService
	taskService *TaskService
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = database.Open(sqlite.Open(":memory:"), logger.Silent)
	suite.Require().NoError(err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(database.Migrate(suite.db))

	store := repository.NewStore(suite.db)
	suite.ctx = context.Background()
	suite.userService = NewUserService(store)
	suite.taskService = NewTaskService(store)
}

func (suite *ServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ServiceTestSuite) createUser(username string) *models.User {
	user, err := suite.userService.CreateUser(suite.ctx, CreateUserInput{
		Username:  username,
		FirstName: "First",
		LastName:  "Last",
		Age:       30,
	})
	suite.Require().NoError(err)
	return user
}

func (suite *ServiceTestSuite) createTask(userID uint64, title string) *models.Task {
	task, err := suite.taskService.CreateTask(suite.ctx, userID, CreateTaskInput{
		Title:    title,
		Content:  "content",
		Priority: 1,
	})
	suite.Require().NoError(err)
	return task
}

func (suite *ServiceTestSuite) countTasks() int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(&models.Task{}).Count(&count).Error)
	return count
}

func (suite *ServiceTestSuite) TestCreateUser_SetsSlugAndActive() {
	user := suite.createUser("Alice Smith")

	stored, err := suite.userService.GetUser(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("Alice Smith", stored.Username)
	suite.Equal("alice-smith", stored.Slug)
	suite.True(stored.IsActive)
	suite.Equal(30, stored.Age)
}

func (suite *ServiceTestSuite) TestCreateUser_DuplicateUsername() {
	suite.createUser("alice")

	_, err := suite.userService.CreateUser(suite.ctx, CreateUserInput{Username: "alice"})
	suite.ErrorIs(err, ErrUsernameTaken)
}

func (suite *ServiceTestSuite) TestGetUser_NotFound() {
	_, err := suite.userService.GetUser(suite.ctx, 42)
	suite.ErrorIs(err, ErrUserNotFound)
}

func (suite *ServiceTestSuite) TestUpdateUser_KeepsUsernameAndSlug() {
	user := suite.createUser("alice")

	err := suite.userService.UpdateUser(suite.ctx, user.ID, UpdateUserInput{
		FirstName: "Alicia",
		LastName:  "Jones",
		Age:       0,
	})
	suite.Require().NoError(err)

	stored, err := suite.userService.GetUser(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("Alicia", stored.FirstName)
	suite.Equal("Jones", stored.LastName)
	suite.Equal(0, stored.Age)
	suite.Equal("alice", stored.Username)
	suite.Equal("alice", stored.Slug)
}

func (suite *ServiceTestSuite) TestUpdateUser_SameValuesStillSucceeds() {
	user := suite.createUser("alice")

	input := UpdateUserInput{FirstName: "First", LastName: "Last", Age: 30}
	suite.NoError(suite.userService.UpdateUser(suite.ctx, user.ID, input))
	suite.NoError(suite.userService.UpdateUser(suite.ctx, user.ID, input))
}

func (suite *ServiceTestSuite) TestUpdateUser_NotFound() {
	user := suite.createUser("alice")

	err := suite.userService.UpdateUser(suite.ctx, user.ID+1, UpdateUserInput{FirstName: "X"})
	suite.ErrorIs(err, ErrUserNotFound)

	stored, err := suite.userService.GetUser(suite.ctx, user.ID)
	suite.Require().NoError(err)
	suite.Equal("First", stored.FirstName)
}

func (suite *ServiceTestSuite) TestListActiveUsers_ExcludesInactive() {
	alice := suite.createUser("alice")
	bob := suite.createUser("bob")
	carol := suite.createUser("carol")
	suite.Require().NoError(suite.db.Model(&models.User{}).Where("id = ?", bob.ID).Update("is_active", false).Error)

	users, err := suite.userService.ListActiveUsers(suite.ctx, utils.PaginationParams{})
	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal(alice.ID, users[0].ID)
	suite.Equal(carol.ID, users[1].ID)

	page, err := suite.userService.ListActiveUsers(suite.ctx, utils.PaginationParams{Page: 2, Limit: 1, Offset: 1})
	suite.Require().NoError(err)
	suite.Require().Len(page, 1)
	suite.Equal(carol.ID, page[0].ID)
}

func (suite *ServiceTestSuite) TestDeleteUser_CascadesTasks() {
	alice := suite.createUser("alice")
	bob := suite.createUser("bob")
	aliceTasks := []*models.Task{
		suite.createTask(alice.ID, "one"),
		suite.createTask(alice.ID, "two"),
		suite.createTask(alice.ID, "three"),
	}
	bobTask := suite.createTask(bob.ID, "bob's task")

	result, err := suite.userService.DeleteUser(suite.ctx, alice.ID)
	suite.Require().NoError(err)
	suite.Equal(alice.ID, result.UserID)
	suite.Equal(int64(3), result.DeletedTasks)

	_, err = suite.userService.GetUser(suite.ctx, alice.ID)
	suite.ErrorIs(err, ErrUserNotFound)
	for _, task := range aliceTasks {
		_, err := suite.taskService.GetTask(suite.ctx, task.ID)
		suite.ErrorIs(err, ErrTaskNotFound)
	}

	_, err = suite.taskService.GetTask(suite.ctx, bobTask.ID)
	suite.NoError(err)
	suite.Equal(int64(1), suite.countTasks())
}

func (suite *ServiceTestSuite) TestDeleteUser_NotFoundRollsBack() {
	// Orphaned rows must survive a failed cascade.
	suite.Require().NoError(suite.db.Create(&models.Task{Title: "orphan", UserID: 99, IsActive: true}).Error)

	_, err := suite.userService.DeleteUser(suite.ctx, 99)
	suite.ErrorIs(err, ErrUserNotFound)
	suite.Equal(int64(1), suite.countTasks())
}

func (suite *ServiceTestSuite) TestListUserTasks() {
	alice := suite.createUser("alice")
	bob := suite.createUser("bob")
	active := suite.createTask(alice.ID, "active")
	inactive := suite.createTask(alice.ID, "inactive")
	suite.createTask(bob.ID, "other")
	suite.Require().NoError(suite.db.Model(&models.Task{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)

	tasks, err := suite.userService.ListUserTasks(suite.ctx, alice.ID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	suite.Equal(active.ID, tasks[0].ID)
	suite.Equal(inactive.ID, tasks[1].ID)
}

func (suite *ServiceTestSuite) TestListUserTasks_EmptyAndMissingUser() {
	alice := suite.createUser("alice")

	tasks, err := suite.userService.ListUserTasks(suite.ctx, alice.ID)
	suite.Require().NoError(err)
	suite.NotNil(tasks)
	suite.Empty(tasks)

	_, err = suite.userService.ListUserTasks(suite.ctx, alice.ID+1)
	suite.ErrorIs(err, ErrUserNotFound)
}

func (suite *ServiceTestSuite) TestCreateTask_SetsSlugAndOwner() {
	alice := suite.createUser("alice")

	task := suite.createTask(alice.ID, "Buy milk")

	stored, err := suite.taskService.GetTask(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Equal("buy-milk", stored.Slug)
	suite.Equal(alice.ID, stored.UserID)
	suite.True(stored.IsActive)
}

func (suite *ServiceTestSuite) TestCreateTask_UserNotFound() {
	_, err := suite.taskService.CreateTask(suite.ctx, 7, CreateTaskInput{Title: "Buy milk"})
	suite.ErrorIs(err, ErrUserNotFound)
	suite.Equal(int64(0), suite.countTasks())
}

func (suite *ServiceTestSuite) TestUpdateTask_RecomputesSlug() {
	alice := suite.createUser("alice")
	task := suite.createTask(alice.ID, "Buy milk")

	err := suite.taskService.UpdateTask(suite.ctx, task.ID, UpdateTaskInput{
		Title:    "Walk the dog",
		Content:  "",
		Priority: 0,
	})
	suite.Require().NoError(err)

	stored, err := suite.taskService.GetTask(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Equal("Walk the dog", stored.Title)
	suite.Equal("walk-the-dog", stored.Slug)
	suite.Equal("", stored.Content)
	suite.Equal(0, stored.Priority)
	suite.Equal(alice.ID, stored.UserID)
}

func (suite *ServiceTestSuite) TestUpdateTask_NotFound() {
	err := suite.taskService.UpdateTask(suite.ctx, 5, UpdateTaskInput{Title: "x"})
	suite.ErrorIs(err, ErrTaskNotFound)
	suite.Equal(int64(0), suite.countTasks())
}

func (suite *ServiceTestSuite) TestDeleteTask() {
	alice := suite.createUser("alice")
	task := suite.createTask(alice.ID, "Buy milk")

	suite.Require().NoError(suite.taskService.DeleteTask(suite.ctx, task.ID))

	_, err := suite.taskService.GetTask(suite.ctx, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)

	err = suite.taskService.DeleteTask(suite.ctx, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
}

func (suite *ServiceTestSuite) TestListActiveTasks_ExcludesInactive() {
	alice := suite.createUser("alice")
	first := suite.createTask(alice.ID, "first")
	second := suite.createTask(alice.ID, "second")
	suite.Require().NoError(suite.db.Model(&models.Task{}).Where("id = ?", first.ID).Update("is_active", false).Error)

	tasks, err := suite.taskService.ListActiveTasks(suite.ctx, utils.PaginationParams{})
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(second.ID, tasks[0].ID)
}

func (suite *ServiceTestSuite) TestUserLifecycleExample() {
	alice := suite.createUser("alice")
	suite.Equal(uint64(1), alice.ID)
	suite.Equal("alice", alice.Slug)

	task := suite.createTask(alice.ID, "Buy milk")
	suite.Equal("buy-milk", task.Slug)

	_, err := suite.userService.DeleteUser(suite.ctx, alice.ID)
	suite.Require().NoError(err)

	_, err = suite.taskService.GetTask(suite.ctx, task.ID)
	suite.ErrorIs(err, ErrTaskNotFound)
	_, err = suite.userService.GetUser(suite.ctx, alice.ID)
	suite.ErrorIs(err, ErrUserNotFound)
}

package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hotross/HomeMaintenanceTracker/internal/middleware"
	"github.com/hotross/HomeMaintenanceTracker/internal/models"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
	"github.com/hotross/HomeMaintenanceTracker/internal/service"
)

type testEnv struct {
	router  *gin.Engine
	store   repository.Store
	jwtAuth *middleware.JWTAuth
}

// newTestEnv wires the real stack (store, services, handlers, routes) on
// an in-memory database.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Device{},
		&models.Consumable{},
		&models.MaintenanceTask{},
	))

	store := repository.NewGormStore(db)
	jwtAuth := middleware.NewJWTAuth("test-secret", 1)

	userService := service.NewUserService(store)
	deviceService := service.NewDeviceService(store)
	consumableService := service.NewConsumableService(store)
	taskService := service.NewTaskService(store)
	accountService := service.NewAccountService(store)

	authHandler := NewAuthHandler(userService, jwtAuth)
	deviceHandler := NewDeviceHandler(deviceService)
	consumableHandler := NewConsumableHandler(consumableService)
	taskHandler := NewTaskHandler(taskService)
	accountHandler := NewAccountHandler(userService, accountService, jwtAuth)

	r := gin.New()
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	authProtected := v1.Group("/auth")
	authProtected.Use(jwtAuth.Middleware())
	authProtected.GET("/me", authHandler.Me)

	devices := v1.Group("/devices")
	devices.Use(jwtAuth.Middleware())
	devices.GET("", deviceHandler.List)
	devices.POST("", deviceHandler.Create)
	devices.GET("/:id", deviceHandler.Get)
	devices.PATCH("/:id", deviceHandler.Update)
	devices.DELETE("/:id", deviceHandler.Delete)
	devices.GET("/:id/consumables", consumableHandler.ListByDevice)
	devices.POST("/:id/consumables", consumableHandler.Create)
	devices.GET("/:id/tasks", taskHandler.ListByDevice)
	devices.POST("/:id/tasks", taskHandler.Create)

	consumables := v1.Group("/consumables")
	consumables.Use(jwtAuth.Middleware())
	consumables.PATCH("/:id", consumableHandler.Update)
	consumables.DELETE("/:id", consumableHandler.Delete)

	tasks := v1.Group("/tasks")
	tasks.Use(jwtAuth.Middleware())
	tasks.GET("", taskHandler.ListForUser)
	tasks.GET("/:id", taskHandler.Get)
	tasks.PATCH("/:id", taskHandler.Update)
	tasks.DELETE("/:id", taskHandler.Delete)
	tasks.POST("/:id/complete", taskHandler.Complete)

	account := v1.Group("/account")
	account.Use(jwtAuth.Middleware())
	account.PATCH("", accountHandler.Update)
	account.GET("/summary", accountHandler.Summary)

	return &testEnv{router: r, store: store, jwtAuth: jwtAuth}
}

// seedSession inserts a user and returns it with a valid bearer token.
func (env *testEnv) seedSession(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user := &models.User{Username: username}
	require.NoError(t, user.SetPassword("hunter22"))
	require.NoError(t, env.store.InsertUser(context.Background(), user))

	token, err := env.jwtAuth.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)
	return user, token
}

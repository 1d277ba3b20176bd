package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentmanagement/internal/app/controllers"
	"github.com/yigit/studentmanagement/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
) {
	api := router.Group("/api")

	// Student routes
	students := api.Group("/student")
	{
		students.GET("", studentController.ListAll)
		students.GET("/:id", studentController.GetByID)
		students.POST("/:id", studentController.RegisterOrUpdate)
	}

	// Subject routes
	subjects := api.Group("/subject")
	{
		subjects.GET("/byStudentCode/:studentCode", subjectController.ListByStudentCode)
		subjects.POST("/add/:studentId", subjectController.AddSubject)
	}

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, "Service is healthy."))
	})
}

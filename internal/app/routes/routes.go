package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/suhaktamgu/academy/internal/app/controllers"
	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	classroomController *controllers.ClassroomController,
	attendanceController *controllers.AttendanceController,
	gradeController *controllers.GradeController,
	assignmentController *controllers.AssignmentController,
	dailyReportController *controllers.DailyReportController,
	counselingController *controllers.CounselingController,
	paymentController *controllers.PaymentController,
	announcementController *controllers.AnnouncementController,
	signupController *controllers.SignupController,
	entranceTestController *controllers.EntranceTestController,
	taskRequestController *controllers.TaskRequestController,
	userController *controllers.UserController,
	dashboardController *controllers.DashboardController,
	mobileController *controllers.MobileController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.GET("/health", healthController.Check)
	v1.POST("/signup-requests", signupController.Create)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/phone-login", authController.PhoneLogin)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes (cookie or bearer) ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionAuth())

	authenticated.GET("/auth/me", authController.Me)

	// Staff surface
	staff := authenticated.Group("")
	staff.Use(authMiddleware.StaffOnly())
	{
		students := staff.Group("/students")
		{
			students.GET("", studentController.List)
			students.POST("", studentController.Create)
			students.GET("/:id", studentController.Get)
			students.PUT("/:id", studentController.Update)
			students.DELETE("/:id", studentController.Delete)
		}

		classes := staff.Group("/classes")
		{
			classes.GET("", classroomController.List)
			classes.POST("", classroomController.Create)
			classes.GET("/:id", classroomController.Get)
			classes.PUT("/:id", classroomController.Update)
			classes.DELETE("/:id", classroomController.Delete)
			classes.POST("/:id/enroll", classroomController.Enroll)
			classes.DELETE("/:id/enroll", classroomController.Unenroll)
			classes.GET("/:id/students", classroomController.Roster)
		}

		staff.GET("/subjects", classroomController.ListSubjects)
		staff.POST("/subjects", classroomController.CreateSubject)
		staff.GET("/teachers", classroomController.ListTeachers)

		staff.GET("/attendance", attendanceController.List)
		staff.POST("/attendance", attendanceController.Save)

		grades := staff.Group("/grades")
		{
			grades.GET("", gradeController.List)
			grades.POST("", gradeController.Save)
			grades.PUT("/:id", gradeController.Update)
			grades.DELETE("/:id", gradeController.Delete)
		}

		assignments := staff.Group("/assignments")
		{
			assignments.GET("", assignmentController.List)
			assignments.POST("", assignmentController.Create)
			assignments.GET("/:id", assignmentController.Get)
			assignments.PUT("/:id", assignmentController.Update)
			assignments.DELETE("/:id", assignmentController.Delete)
			assignments.PUT("/:id/submissions", assignmentController.UpdateSubmission)
		}

		staff.GET("/daily-reports", dailyReportController.List)
		staff.POST("/daily-reports", dailyReportController.Save)

		counseling := staff.Group("/counseling")
		{
			counseling.GET("", counselingController.List)
			counseling.POST("", counselingController.Create)
			counseling.PUT("/:id", counselingController.Update)
			counseling.DELETE("/:id", counselingController.Delete)
		}

		payments := staff.Group("/payments")
		{
			payments.GET("", paymentController.Month)
			payments.POST("", paymentController.Upsert)
			payments.GET("/history", paymentController.History)
			payments.PATCH("/:id", paymentController.UpdateStatus)
			payments.DELETE("/:id", paymentController.Delete)
		}

		announcements := staff.Group("/announcements")
		{
			announcements.GET("", announcementController.List)
			announcements.POST("", announcementController.Create)
			announcements.PUT("/:id", announcementController.Update)
			announcements.DELETE("/:id", announcementController.Delete)
		}

		entranceTests := staff.Group("/entrance-tests")
		{
			entranceTests.GET("", entranceTestController.List)
			entranceTests.POST("", entranceTestController.Create)
			entranceTests.GET("/:id", entranceTestController.Get)
			entranceTests.PUT("/:id", entranceTestController.Update)
			entranceTests.DELETE("/:id", entranceTestController.Delete)
		}

		taskRequests := staff.Group("/task-requests")
		{
			taskRequests.GET("", taskRequestController.List)
			taskRequests.POST("", taskRequestController.Create)
			taskRequests.PATCH("/:id", taskRequestController.SetCompleted)
			taskRequests.DELETE("/:id", taskRequestController.Delete)
		}

		staff.GET("/dashboard", dashboardController.Snapshot)

		// Admin-only surface
		admin := staff.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/signup-requests", signupController.List)
			admin.PATCH("/signup-requests/:id", signupController.Decide)
			admin.DELETE("/signup-requests/:id", signupController.Delete)

			admin.GET("/users", userController.List)
			admin.PUT("/users/:id", userController.Update)
			admin.DELETE("/users/:id", userController.Delete)
		}
	}

	// Mobile surface (students and parents)
	mobile := authenticated.Group("/mobile")
	mobile.Use(authMiddleware.RoleRequired(models.RoleStudent, models.RoleParent))
	{
		mobile.GET("/children", mobileController.Children)
		mobile.GET("/student-profile", mobileController.StudentProfile)
		mobile.GET("/student/:id/attendance", mobileController.Attendance)
		mobile.GET("/student/:id/grades", mobileController.Grades)
		mobile.GET("/student/:id/assignments", mobileController.Assignments)
		mobile.GET("/lectures", mobileController.Lectures)
		mobile.GET("/announcements", mobileController.Announcements)
		mobile.GET("/counseling", mobileController.ListCounseling)
		mobile.POST("/counseling", mobileController.CreateCounseling)
		mobile.GET("/daily-reports", mobileController.DailyReports)
		mobile.GET("/dashboard", mobileController.Dashboard)
		mobile.POST("/push-token", mobileController.RegisterPushToken)
		mobile.DELETE("/push-token", mobileController.DeactivatePushToken)
	}
}

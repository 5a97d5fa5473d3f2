package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campushub/lms-portal-api/api/swagger"
	"github.com/campushub/lms-portal-api/internal/handler"
	"github.com/campushub/lms-portal-api/internal/middleware"
	"github.com/campushub/lms-portal-api/internal/models"
	"github.com/campushub/lms-portal-api/internal/repository"
	"github.com/campushub/lms-portal-api/internal/service"
	"github.com/campushub/lms-portal-api/pkg/cache"
	"github.com/campushub/lms-portal-api/pkg/config"
	"github.com/campushub/lms-portal-api/pkg/database"
	"github.com/campushub/lms-portal-api/pkg/export"
	"github.com/campushub/lms-portal-api/pkg/logger"
	corsmiddleware "github.com/campushub/lms-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushub/lms-portal-api/pkg/middleware/requestid"
	"github.com/campushub/lms-portal-api/pkg/storage"
)

// @title LMS Portal API
// @version 1.0.0
// @description Learning management portal: directory, enrolment, attendance and grades
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		defer cacheRepo.Close() //nolint:errcheck
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Grades.SummaryCacheTTL, logr, true)
	} else {
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Grades.SummaryCacheTTL, logr, false)
	}

	personRepo := repository.NewPersonRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	termRepo := repository.NewTermRepository(db)
	offeringRepo := repository.NewOfferingRepository(db)
	assignmentRepo := repository.NewTeachingAssignmentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	enrolmentRepo := repository.NewEnrolmentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	assessmentRepo := repository.NewAssessmentTypeRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	legacyRepo := repository.NewLegacyRecordRepository(db)
	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
	})
	personSvc := service.NewPersonService(personRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	instructorSvc := service.NewInstructorService(instructorRepo, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, validate, logr)
	termSvc := service.NewTermService(termRepo, validate, logr)
	offeringSvc := service.NewOfferingService(offeringRepo, validate, logr)
	assignmentSvc := service.NewTeachingAssignmentService(assignmentRepo, validate, logr)
	sessionSvc := service.NewSessionService(sessionRepo, enrolmentRepo, validate, logr)
	enrolmentSvc := service.NewEnrolmentService(enrolmentRepo, validate, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, sessionRepo, enrolmentRepo, instructorRepo, validate, logr)
	assessmentSvc := service.NewAssessmentTypeService(assessmentRepo, validate, logr)
	gradeSvc := service.NewGradeService(gradeRepo, enrolmentRepo, offeringRepo, studentRepo, cacheSvc, validate, logr)
	legacySvc := service.NewLegacyRecordService(legacyRepo, cfg.Legacy.GradesAttendanceView, logr)

	csvExporter := export.NewCSVExporter()
	pdfExporter := export.NewPDFExporter()

	exportStore, err := storage.NewLocalStorage(cfg.Exports.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to prepare exports directory", "error", err)
	}
	exportSigner := storage.NewSignedURLSigner(cfg.Exports.SigningKey, cfg.Exports.DownloadTTL)
	exportSvc := service.NewExportJobService(gradeSvc, csvExporter, pdfExporter, exportStore, exportSigner, service.ExportJobConfig{
		Workers:      cfg.Exports.Workers,
		RetentionTTL: cfg.Exports.RetentionTTL,
	}, logr)
	exportSvc.Start(context.Background())
	defer exportSvc.Stop()

	authHandler := handler.NewAuthHandler(authSvc, studentSvc, instructorSvc)
	personHandler := handler.NewPersonHandler(personSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	instructorHandler := handler.NewInstructorHandler(instructorSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	termHandler := handler.NewTermHandler(termSvc)
	offeringHandler := handler.NewOfferingHandler(offeringSvc)
	assignmentHandler := handler.NewTeachingAssignmentHandler(assignmentSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc)
	enrolmentHandler := handler.NewEnrolmentHandler(enrolmentSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	assessmentHandler := handler.NewAssessmentTypeHandler(assessmentSvc)
	gradeHandler := handler.NewGradeHandler(gradeSvc, csvExporter, pdfExporter)
	exportHandler := handler.NewExportJobHandler(exportSvc)
	legacyHandler := handler.NewLegacyRecordHandler(legacySvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", middleware.JWT(authSvc), authHandler.Logout)
		auth.GET("/student/:student_id", authHandler.StudentProfile)
		auth.GET("/instructor/:instructor_id", authHandler.InstructorProfile)
	}

	admin := string(models.RoleAdmin)
	instructor := string(models.RoleInstructor)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))

	people := protected.Group("/people", middleware.RBAC(admin))
	{
		people.GET("", personHandler.List)
		people.GET("/:id", personHandler.Get)
		people.POST("", personHandler.Create)
		people.PUT("/:id", personHandler.Update)
		people.DELETE("/:id", personHandler.Delete)
	}

	students := protected.Group("/students")
	{
		students.GET("", middleware.RBAC(admin, instructor), studentHandler.List)
		students.GET("/:student_id", middleware.RBAC(admin, instructor, middleware.RoleSelf), studentHandler.Get)
		students.POST("", middleware.RBAC(admin), studentHandler.Create)
		students.PUT("/:student_id", middleware.RBAC(admin), studentHandler.Update)
		students.DELETE("/:student_id", middleware.RBAC(admin), studentHandler.Delete)
	}

	instructors := protected.Group("/instructors")
	{
		instructors.GET("", middleware.RBAC(admin, instructor), instructorHandler.List)
		instructors.GET("/:instructor_id", middleware.RBAC(admin, instructor, middleware.RoleSelf), instructorHandler.Get)
		instructors.POST("", middleware.RBAC(admin), instructorHandler.Create)
		instructors.PUT("/:instructor_id", middleware.RBAC(admin), instructorHandler.Update)
		instructors.DELETE("/:instructor_id", middleware.RBAC(admin), instructorHandler.Delete)
	}

	courses := protected.Group("/courses")
	{
		courses.GET("", courseHandler.List)
		courses.GET("/:course_code", courseHandler.Get)
		courses.POST("", middleware.RBAC(admin), courseHandler.Create)
		courses.PUT("/:course_code", middleware.RBAC(admin), courseHandler.Update)
		courses.DELETE("/:course_code", middleware.RBAC(admin), courseHandler.Delete)
	}

	terms := protected.Group("/terms")
	{
		terms.GET("", termHandler.List)
		terms.GET("/:id", termHandler.Get)
		terms.POST("", middleware.RBAC(admin), termHandler.Create)
		terms.PUT("/:id", middleware.RBAC(admin), termHandler.Update)
		terms.DELETE("/:id", middleware.RBAC(admin), termHandler.Delete)
	}

	offerings := protected.Group("/class-offerings")
	{
		offerings.GET("", offeringHandler.List)
		offerings.GET("/:id", offeringHandler.Get)
		offerings.POST("", middleware.RBAC(admin), offeringHandler.Create)
		offerings.PUT("/:id", middleware.RBAC(admin), offeringHandler.Update)
		offerings.DELETE("/:id", middleware.RBAC(admin), offeringHandler.Delete)
	}

	assignments := protected.Group("/teaching-assignments")
	{
		assignments.GET("", assignmentHandler.List)
		assignments.GET("/:id", assignmentHandler.Get)
		assignments.POST("", middleware.RBAC(admin), assignmentHandler.Create)
		assignments.DELETE("/:id", middleware.RBAC(admin), assignmentHandler.Delete)
	}

	sessions := protected.Group("/class-sessions")
	{
		sessions.GET("", sessionHandler.List)
		sessions.GET("/:id", sessionHandler.Get)
		sessions.POST("", middleware.RBAC(admin, instructor), sessionHandler.Create)
		sessions.PUT("/:id", middleware.RBAC(admin, instructor), sessionHandler.Update)
		sessions.DELETE("/:id", middleware.RBAC(admin), sessionHandler.Delete)
		sessions.GET("/by-student/:student_id/:class_offering_id", middleware.RBAC(admin, instructor, middleware.RoleSelf), sessionHandler.ListForStudent)
	}

	enrolments := protected.Group("/enrolments")
	{
		enrolments.GET("", middleware.RBAC(admin, instructor), enrolmentHandler.List)
		enrolments.GET("/:id", middleware.RBAC(admin, instructor), enrolmentHandler.Get)
		enrolments.POST("", middleware.RBAC(admin), enrolmentHandler.Create)
		enrolments.PUT("/:id", middleware.RBAC(admin), enrolmentHandler.UpdateStatus)
		enrolments.DELETE("/:id", middleware.RBAC(admin), enrolmentHandler.Delete)
	}

	attendance := protected.Group("/attendance")
	{
		attendance.GET("", middleware.RBAC(admin, instructor), attendanceHandler.List)
		attendance.GET("/by-class-offering/:id", middleware.RBAC(admin, instructor), attendanceHandler.ListByOffering)
		attendance.POST("", middleware.RBAC(admin, instructor), attendanceHandler.Upsert)
		attendance.PUT("/:id", middleware.RBAC(admin), attendanceHandler.UpdateStatus)
		attendance.DELETE("/:id", middleware.RBAC(admin), attendanceHandler.Delete)
		attendance.PATCH("/:id/pending", middleware.RBAC(admin, instructor), attendanceHandler.MarkPendingByID)
		attendance.PATCH("/student/:student_id/session/:session_id/pending", middleware.RBAC(admin, middleware.RoleSelf), attendanceHandler.StudentMarkPending)
		attendance.PATCH("/verify-all/:session_id", middleware.RBAC(admin, instructor), attendanceHandler.VerifyAll)
		attendance.GET("/instructor/:instructor_id/session/:session_id", middleware.RBAC(admin, middleware.RoleSelf), attendanceHandler.InstructorRoster)
		attendance.POST("/instructor/:instructor_id/session/:session_id", middleware.RBAC(admin, middleware.RoleSelf), attendanceHandler.InstructorSetStatus)
	}

	assessments := protected.Group("/assessment-types")
	{
		assessments.GET("", assessmentHandler.List)
		assessments.GET("/:id", assessmentHandler.Get)
		assessments.POST("", middleware.RBAC(admin, instructor), assessmentHandler.Create)
		assessments.PUT("/:id", middleware.RBAC(admin, instructor), assessmentHandler.Update)
		assessments.DELETE("/:id", middleware.RBAC(admin), assessmentHandler.Delete)
	}

	grades := protected.Group("/grades")
	{
		grades.GET("", middleware.RBAC(admin, instructor), gradeHandler.List)
		grades.GET("/by-class-offering/:id", middleware.RBAC(admin, instructor), gradeHandler.ListByOffering)
		grades.POST("", middleware.RBAC(admin, instructor), gradeHandler.Upsert)
		grades.PUT("/:grade_id", middleware.RBAC(admin, instructor), gradeHandler.Update)
		grades.DELETE("/:grade_id", middleware.RBAC(admin, instructor), gradeHandler.Delete)
		grades.GET("/gradebook", middleware.RBAC(admin, instructor), gradeHandler.Gradebook)
		grades.GET("/gradebook/export", middleware.RBAC(admin, instructor), gradeHandler.GradebookExport)
		grades.GET("/student/:student_id/summary", middleware.RBAC(admin, instructor, middleware.RoleSelf), gradeHandler.StudentSummary)
		grades.GET("/student/:student_id/class-offering/:class_offering_id", middleware.RBAC(admin, instructor, middleware.RoleSelf), gradeHandler.StudentCourseGrades)
		grades.GET("/student/:student_id/class-offering/:class_offering_id/export", middleware.RBAC(admin, instructor, middleware.RoleSelf), gradeHandler.StudentCourseGradesExport)
		grades.POST("/exports", middleware.RBAC(admin, instructor), exportHandler.Create)
		grades.GET("/exports/:job_id", middleware.RBAC(admin, instructor), exportHandler.Get)
	}

	// Download links carry their own HMAC token, so no bearer token is required.
	api.GET("/grades/exports/download", exportHandler.Download)

	legacy := protected.Group("/grades-attendance", middleware.RBAC(admin, instructor))
	{
		legacy.GET("", legacyHandler.List)
		legacy.GET("/by-class-offering/:id", legacyHandler.ListByOffering)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/UserShri98/employee-system/internal/config"
	appHTTP "github.com/UserShri98/employee-system/internal/handler/http"
	"github.com/UserShri98/employee-system/internal/pkg/cron"
	"github.com/UserShri98/employee-system/internal/pkg/database"
	"github.com/UserShri98/employee-system/internal/pkg/jwt"
	"github.com/UserShri98/employee-system/internal/repository/postgresql"
	attendanceService "github.com/UserShri98/employee-system/internal/service/attendance"
	authService "github.com/UserShri98/employee-system/internal/service/auth"
	employeeService "github.com/UserShri98/employee-system/internal/service/employee"
	holidayService "github.com/UserShri98/employee-system/internal/service/holiday"
	leaveService "github.com/UserShri98/employee-system/internal/service/leave"
	salaryService "github.com/UserShri98/employee-system/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, cfg.Salary.DefaultBaseSalary)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, userRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo, userRepo, attendanceRepo, leaveRepo, holidayRepo, cfg.Salary)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, holidayRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

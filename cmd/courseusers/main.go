// courseusers 命令行管理课程成员：列出学生，选择一名确认后移出课程
package main

import (
	"bufio"
	"context"
	"courseware_backend/internal/app"
	"courseware_backend/internal/config"
	"courseware_backend/internal/courseusers"
	"courseware_backend/internal/fixtures"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"courseware_backend/internal/repository/memrepo"
	"courseware_backend/internal/service"
	"courseware_backend/pkg/logger"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// terminalConfirmer 在终端询问 y/N
type terminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (t *terminalConfirmer) ConfirmRemove(ctx context.Context, role model.UserRole, email, resourceKind string) (bool, error) {
	fmt.Fprintf(t.out, "Remove %s %s from this %s? [y/N] ", role, email, resourceKind)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	courseID := flag.String("course", "", "课程ID，memory 驱动下默认使用演示课程")
	email := flag.String("email", "", "操作人邮箱")
	password := flag.String("password", "", "操作人密码")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	repos, closers, err := openRepositories(ctx, cfg, courseID, email, password)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i](context.Background())
		}
	}()

	if *courseID == "" {
		log.Fatal("-course is required")
	}

	auth := service.NewAuthService(repos.User, cfg.JWT)
	_, user, err := auth.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	actor := service.Actor{UserID: user.ID, Role: user.Role}

	courses := service.NewCourseService(repos, nil)
	if err := run(ctx, courses, actor, *courseID, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func openRepositories(ctx context.Context, cfg *config.Config, courseID, email, password *string) (*repository.Repositories, []func(context.Context) error, error) {
	if cfg.Database.Driver != config.DriverMemory {
		repos, _, closers, err := app.OpenRepositories(cfg)
		return repos, closers, err
	}

	repos := memrepo.Open().Repositories()
	set, err := fixtures.Load(ctx, repos)
	if err != nil {
		return nil, nil, err
	}
	if *courseID == "" {
		*courseID = set.Course.ID
	}
	if *email == "" {
		*email = set.Teacher.Email
		*password = fixtures.Password
	}
	return repos, nil, nil
}

func run(ctx context.Context, courses *service.CourseService, actor service.Actor, courseID string, stdin io.Reader, stdout io.Writer) error {
	students, err := courses.ListStudents(ctx, actor, courseID)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Fprintln(stdout, "no students enrolled")
		return nil
	}

	in := bufio.NewReader(stdin)
	var removeErr error
	overview := courseusers.NewListOverview(students, &terminalConfirmer{in: in, out: stdout}, func(userID string) {
		removeErr = courses.RemoveStudent(ctx, actor, courseID, userID)
	})

	for i, u := range overview.Users() {
		fmt.Fprintf(stdout, "%2d) %-24s %-32s %s\n", i+1, u.Name, u.Email, u.Role)
	}
	fmt.Fprint(stdout, "select a student to remove (empty to quit): ")
	line, _ := in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(students) {
		return fmt.Errorf("invalid selection %q", line)
	}

	overview.SetCurrentUser(students[n-1])
	overview.RemoveUser(ctx)
	return removeErr
}

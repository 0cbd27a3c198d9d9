// Package console implements the interactive text menus: a login loop
// that dispatches to role-specific menus, prompting, and report
// rendering. The console owns input trimming, re-prompting on blank
// required fields and role gating; the repositories and reporting engine
// below it perform no authorization of their own.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/allexsabbir/uiu-ums-go/internal/auth"
	apperrors "github.com/allexsabbir/uiu-ums-go/internal/errors"
	"github.com/allexsabbir/uiu-ums-go/internal/grading"
	"github.com/allexsabbir/uiu-ums-go/internal/logger"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
	"github.com/allexsabbir/uiu-ums-go/internal/registry"
	"github.com/allexsabbir/uiu-ums-go/internal/report"
)

// Console drives the interactive session over the given reader/writer.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	reg     *registry.Registry
	reports *report.Engine
	authn   *auth.Authenticator
	log     *logger.Logger
}

// New creates a console bound to the given streams and backends.
func New(in io.Reader, out io.Writer, reg *registry.Registry, reports *report.Engine, authn *auth.Authenticator, log *logger.Logger) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		reg:     reg,
		reports: reports,
		authn:   authn,
		log:     log.WithModule("console"),
	}
}

// Run loops over login sessions until input is exhausted or the user
// quits with a blank username.
func (c *Console) Run() error {
	fmt.Fprintln(c.out, "UIU University Management System")
	fmt.Fprintln(c.out, "Storage: fixed-width binary record files in the data directory")

	for {
		username, ok := c.readLine("\nUsername (blank to quit): ")
		if !ok || username == "" {
			return nil
		}
		password, ok := c.readLine("Password: ")
		if !ok {
			return nil
		}

		user, err := c.authn.Login(username, password)
		if apperrors.IsInvalidCredentials(err) {
			fmt.Fprintln(c.out, "Invalid credentials.")
			continue
		}
		if err != nil {
			return err
		}

		sessionLog := c.log.WithSessionID(uuid.NewString()).WithField("username", user.Username)
		sessionLog.Info("login", "role", user.Role.String())

		switch user.Role {
		case records.RoleAdmin:
			c.adminMenu(sessionLog)
		case records.RoleFaculty:
			c.facultyMenu(sessionLog, user)
		case records.RoleStudent:
			c.studentMenu(sessionLog, user)
		default:
			fmt.Fprintln(c.out, "Unknown role.")
		}

		sessionLog.Info("logout")
		fmt.Fprintln(c.out, "Logged out.")
	}
}

// printError maps domain errors to console messages. Unexpected errors
// are logged with full detail and acknowledged briefly on screen.
func (c *Console) printError(log *logger.Logger, err error) {
	switch {
	case err == nil:
		return
	case apperrors.IsDuplicateKey(err):
		fmt.Fprintln(c.out, "Already exists.")
	case apperrors.IsNotFound(err):
		fmt.Fprintln(c.out, "Not found.")
	case apperrors.IsInvalidGrade(err):
		fmt.Fprintf(c.out, "Invalid grade. Valid grades: %s, or NA.\n", strings.Join(grading.Letters(), ", "))
	case apperrors.IsInvalidInput(err):
		fmt.Fprintf(c.out, "Invalid input: %s\n", apperrors.GetUserMessage(err))
	default:
		log.WithError(err).Error("operation failed")
		fmt.Fprintf(c.out, "Error: %s\n", apperrors.GetUserMessage(err))
	}
}

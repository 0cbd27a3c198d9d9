package console

import (
	"fmt"

	"github.com/allexsabbir/uiu-ums-go/internal/logger"
	"github.com/allexsabbir/uiu-ums-go/internal/records"
)

func (c *Console) studentMenu(log *logger.Logger, user records.User) {
	for {
		fmt.Fprint(c.out, `
==== STUDENT MENU ====
1. View My Profile
2. View My Transcript
3. List Available Courses
0. Logout
`)
		choice, ok := c.promptInt("Choose: ")
		if !ok || choice == 0 {
			return
		}

		switch choice {
		case 1:
			s, err := c.reg.Students.FindByID(user.RefID)
			if err != nil {
				c.printError(log, err)
				continue
			}
			c.printStudent(s)
		case 2:
			c.showTranscript(log, user.RefID)
		case 3:
			c.listCourses()
		default:
			fmt.Fprintln(c.out, "Invalid choice.")
		}
	}
}

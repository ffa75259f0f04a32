package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/Basantrajshakti/taskboard/internal/client"
)

var (
	app    = kingpin.New("taskboard", "Project/task management client")
	server = app.Flag("server", "Server base URL").Default("http://localhost:3200").Envar("TASKBOARD_SERVER").String()
	token  = app.Flag("token", "Session token").Envar("TASKBOARD_TOKEN").String()

	signupCmd      = app.Command("signup", "Register a new user")
	signupName     = signupCmd.Flag("name", "Display name").Required().String()
	signupEmail    = signupCmd.Flag("email", "Email address").Required().String()
	signupPassword = signupCmd.Flag("password", "Password").Required().String()

	signinCmd      = app.Command("signin", "Sign in with credentials")
	signinEmail    = signinCmd.Flag("email", "Email address").Required().String()
	signinPassword = signinCmd.Flag("password", "Password").Required().String()

	signoutCmd = app.Command("signout", "Revoke the current session")

	listCmd = app.Command("list", "List all tasks")

	usersCmd = app.Command("users", "List user display names")

	showCmd = app.Command("show", "Show task details")
	showID  = showCmd.Arg("id", "Task ID").Required().String()

	createCmd       = app.Command("create", "Create a new task")
	createTitle     = createCmd.Arg("title", "Task title").Required().String()
	createDesc      = createCmd.Flag("desc", "Task description").String()
	createDeadline  = createCmd.Flag("deadline", "Deadline (YYYY-MM-DD)").String()
	createPriority  = createCmd.Flag("priority", "Priority (LOW|MEDIUM|HIGH|URGENT)").Default("MEDIUM").String()
	createStatus    = createCmd.Flag("status", "Status (TODO|DONE|PENDING|ONGOING)").Default("TODO").String()
	createTags      = createCmd.Flag("tag", "Tag (repeatable)").Strings()
	createAssignees = createCmd.Flag("assignees", "Comma-separated assignee names").String()

	updateCmd       = app.Command("update", "Update a task")
	updateID        = updateCmd.Arg("id", "Task ID").Required().String()
	updateTitle     = updateCmd.Flag("title", "Task title").String()
	updateDesc      = updateCmd.Flag("desc", "Task description").String()
	updateDeadline  = updateCmd.Flag("deadline", "Deadline (YYYY-MM-DD)").String()
	updatePriority  = updateCmd.Flag("priority", "Priority (LOW|MEDIUM|HIGH|URGENT)").String()
	updateStatus    = updateCmd.Flag("status", "Status (TODO|DONE|PENDING|ONGOING)").String()
	updateTags      = updateCmd.Flag("tag", "Tag (repeatable, replaces existing)").Strings()
	updateAssignees = updateCmd.Flag("assignees", "Comma-separated assignee names").String()

	deleteCmd = app.Command("delete", "Delete a task")
	deleteID  = deleteCmd.Arg("id", "Task ID").Required().String()
	deleteYes = deleteCmd.Flag("yes", "Skip the confirmation prompt").Short('y').Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	ctx := context.Background()

	c := client.New(*server, client.WithToken(*token))

	var err error
	switch command {
	case signupCmd.FullCommand():
		err = handleSignUp(ctx, c, *signupName, *signupEmail, *signupPassword)
	case signinCmd.FullCommand():
		err = handleSignIn(ctx, c, *signinEmail, *signinPassword)
	case signoutCmd.FullCommand():
		err = c.SignOut(ctx)
	case listCmd.FullCommand():
		err = handleList(ctx, c)
	case usersCmd.FullCommand():
		err = handleUsers(ctx, c)
	case showCmd.FullCommand():
		err = handleShow(ctx, c, *showID)
	case createCmd.FullCommand():
		err = handleCreate(ctx, c)
	case updateCmd.FullCommand():
		err = handleUpdate(ctx, c)
	case deleteCmd.FullCommand():
		err = handleDelete(ctx, c, *deleteID, *deleteYes)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

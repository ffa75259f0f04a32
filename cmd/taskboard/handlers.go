package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Basantrajshakti/taskboard/internal/action"
	"github.com/Basantrajshakti/taskboard/internal/client"
	"github.com/Basantrajshakti/taskboard/internal/formfield"
	"github.com/Basantrajshakti/taskboard/internal/task"
)

func handleSignUp(ctx context.Context, c *client.Client, name, email, password string) error {
	resp, err := c.SignUp(ctx, name, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed up as %s <%s>\n", resp.User.Name, resp.User.Email)
	fmt.Printf("export TASKBOARD_TOKEN=%s\n", resp.Token)
	return nil
}

func handleSignIn(ctx context.Context, c *client.Client, email, password string) error {
	resp, err := c.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("Signed in as %s <%s>\n", resp.User.Name, resp.User.Email)
	fmt.Printf("export TASKBOARD_TOKEN=%s\n", resp.Token)
	return nil
}

func handleList(ctx context.Context, c *client.Client) error {
	ctrl, err := newController(ctx, c)
	if err != nil {
		return err
	}
	printTasks(ctrl.Store().Tasks())
	return nil
}

func handleUsers(ctx context.Context, c *client.Client) error {
	names, err := c.ListUserNames(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func handleShow(ctx context.Context, c *client.Client, id string) error {
	ctrl, err := newController(ctx, c)
	if err != nil {
		return err
	}
	if err := ctrl.BeginAction(action.ModeView, id); err != nil {
		return err
	}
	defer ctrl.ClearAction()

	t, _ := ctrl.Store().Get(id)
	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Title:       %s\n", t.Title)
	fmt.Printf("Description: %s\n", t.Description)
	if t.Deadline != nil {
		fmt.Printf("Deadline:    %s\n", t.Deadline.Format("2006-01-02"))
	}
	fmt.Printf("Priority:    %s\n", t.Priority)
	fmt.Printf("Status:      %s\n", t.Status)
	fmt.Printf("Tags:        %s\n", joinTags(t.Tags))
	fmt.Printf("Assignees:   %s\n", formfield.JoinAssignees(t.Assignees))
	fmt.Printf("Created by:  %s\n", t.CreatedBy.Name)
	fmt.Printf("Created at:  %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func handleCreate(ctx context.Context, c *client.Client) error {
	ctrl, err := newController(ctx, c)
	if err != nil {
		return err
	}
	if err := ctrl.BeginAction(action.ModeCreate, ""); err != nil {
		return err
	}

	form := action.FormData{
		Title:       *createTitle,
		Description: *createDesc,
		Deadline:    *createDeadline,
		Priority:    task.Priority(*createPriority),
		Status:      task.Status(*createStatus),
		Tags:        parseTags(*createTags),
		Assignees:   *createAssignees,
	}
	return ctrl.SubmitUpsert(ctx, form)
}

func handleUpdate(ctx context.Context, c *client.Client) error {
	ctrl, err := newController(ctx, c)
	if err != nil {
		return err
	}
	if err := ctrl.BeginAction(action.ModeEdit, *updateID); err != nil {
		return err
	}

	// Prefill the form from the current record, then apply the given flags.
	existing, _ := ctrl.Store().Get(*updateID)
	form := action.FormData{
		Title:       existing.Title,
		Description: existing.Description,
		Priority:    existing.Priority,
		Status:      existing.Status,
		Tags:        existing.Tags,
		Assignees:   formfield.JoinAssignees(existing.Assignees),
	}
	if existing.Deadline != nil {
		form.Deadline = existing.Deadline.Format("2006-01-02")
	}
	if *updateTitle != "" {
		form.Title = *updateTitle
	}
	if *updateDesc != "" {
		form.Description = *updateDesc
	}
	if *updateDeadline != "" {
		form.Deadline = *updateDeadline
	}
	if *updatePriority != "" {
		form.Priority = task.Priority(*updatePriority)
	}
	if *updateStatus != "" {
		form.Status = task.Status(*updateStatus)
	}
	if len(*updateTags) > 0 {
		form.Tags = parseTags(*updateTags)
	}
	if *updateAssignees != "" {
		form.Assignees = *updateAssignees
	}
	return ctrl.SubmitUpsert(ctx, form)
}

func handleDelete(ctx context.Context, c *client.Client, id string, skipPrompt bool) error {
	ctrl, err := newController(ctx, c)
	if err != nil {
		return err
	}
	if err := ctrl.BeginAction(action.ModeDelete, id); err != nil {
		return err
	}

	if !skipPrompt {
		fmt.Printf("Delete task %s? This action cannot be undone. [y/N] ", id)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			ctrl.ClearAction()
			fmt.Println("Cancelled.")
			return nil
		}
	}
	return ctrl.ConfirmDelete(ctx)
}

// newController seeds a controller with the server's current task list.
func newController(ctx context.Context, c *client.Client) (*action.Controller, error) {
	tasks, err := c.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		snapshot = append(snapshot, *t)
	}
	return action.NewController(action.NewListStore(snapshot), c, newColorNotifier()), nil
}

func printTasks(tasks []task.Task) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tTAGS\tASSIGNEES\tCREATED BY")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, t.Priority, t.Status,
			joinTags(t.Tags), formfield.JoinAssignees(t.Assignees), t.CreatedBy.Name)
	}
	w.Flush()
}

func parseTags(raw []string) []task.Tag {
	var tags []task.Tag
	for _, r := range raw {
		tags = formfield.AddTag(tags, task.Tag(strings.ToUpper(r)))
	}
	return tags
}

func joinTags(tags []task.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/addisfleet/transport-admin/internal/api"
	"github.com/addisfleet/transport-admin/internal/config"
	"github.com/addisfleet/transport-admin/internal/forms"
	"github.com/addisfleet/transport-admin/internal/models"
	"github.com/addisfleet/transport-admin/internal/session"
	"github.com/addisfleet/transport-admin/internal/views"
	"github.com/addisfleet/transport-admin/internal/workflow"
)

const usage = `transport-admin <command> [flags]

Commands:
  login           -email -password        obtain a session
  logout                                  end the session
  whoami                                  show the signed-in identity
  signup          -name -email -phone -password -department
  users           [-page N]               list user accounts
  approve         -id N                   approve a pending account
  reject          -id N -reason TEXT      reject a pending account
  set-role        -id N -role ROLE        change an account's role
  departments                             list departments
  requests                                list transport requests
  request-create  -start-day -start-time -return-day -destination -reason -employees 3,5
  history         [-filter All|approved|rejected] [-page N]
  vehicles                                list fleet vehicles
  vehicle-status  -plate P -status Active|Service|Maintenance
`

type app struct {
	cfg    config.Config
	sess   *session.Session
	client *api.Client
}

func main() {
	cfg, err := config.New(".env")
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	sess, err := session.Load(cfg.TokenFile)
	if err != nil {
		log.WithError(err).Fatal("load session")
	}

	a := &app{
		cfg:    cfg,
		sess:   sess,
		client: api.NewClient(cfg.APIBaseURL, sess, cfg.HTTPTimeout),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, session.ErrNoToken) || errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "not signed in; run 'transport-admin login'")
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami()
	case "signup":
		return a.signup(ctx, args)
	case "users":
		return a.users(ctx, args)
	case "approve", "reject":
		return a.decide(ctx, command, args)
	case "set-role":
		return a.setRole(ctx, args)
	case "departments":
		return a.departments(ctx)
	case "requests":
		return a.requests(ctx)
	case "request-create":
		return a.requestCreate(ctx, args)
	case "history":
		return a.history(ctx, args)
	case "vehicles":
		return a.vehicles()
	case "vehicle-status":
		return a.vehicleStatus(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		return errors.New("email and password are required")
	}

	pair, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.sess.Set(pair.Access, pair.Refresh); err != nil {
		return err
	}

	fmt.Println("signed in")
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if refresh := a.sess.RefreshToken(); refresh != "" {
		if err := a.client.Logout(ctx, refresh); err != nil {
			// The server-side token may already be gone; the local session
			// is cleared either way.
			log.WithError(err).Warn("logout call failed")
		}
	}
	if err := a.sess.Clear(); err != nil {
		return err
	}

	fmt.Println("signed out")
	return nil
}

func (a *app) whoami() error {
	if _, err := a.sess.Token(); err != nil {
		return err
	}

	id, ok := a.sess.Identity()
	if !ok {
		fmt.Println("signed in (token carries no readable identity)")
		return nil
	}

	fmt.Printf("%s <%s> — %s\n", id.Name, id.Email, id.Role)
	return nil
}

func (a *app) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	form := forms.SignupForm{}
	fs.StringVar(&form.FullName, "name", "", "full name")
	fs.StringVar(&form.Email, "email", "", "email")
	fs.StringVar(&form.Phone, "phone", "", "phone number")
	fs.StringVar(&form.Password, "password", "", "password")
	fs.StringVar(&form.Department, "department", "", "department name")
	fs.Parse(args)

	if err := form.Validate(); err != nil {
		return err
	}
	if err := a.client.Signup(ctx, form.Payload()); err != nil {
		return err
	}

	fmt.Println("account created; awaiting approval")
	return nil
}

func (a *app) users(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	list := views.NewUserList(a.client)
	list.SetPage(*page)
	if err := list.Reload(ctx); err != nil {
		return err
	}

	tw := newTable()
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tDEPARTMENT\tSTATE\tACTIONS")
	for _, u := range list.Users() {
		state := "active"
		if u.Pending() {
			state = "pending"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.FullName, u.Email, u.Role, u.Department, state,
			strings.Join(list.Actions(u), ","))
	}
	tw.Flush()

	fmt.Printf("page %d, %d accounts total\n", list.Page(), list.Count())
	return nil
}

func (a *app) decide(ctx context.Context, action string, args []string) error {
	fs := flag.NewFlagSet(action, flag.ExitOnError)
	id := fs.Int("id", 0, "account id")
	reason := fs.String("reason", "", "rejection reason")
	fs.Parse(args)

	if *id <= 0 {
		return errors.New("id is required")
	}

	list := views.NewUserList(a.client)
	approver := workflow.NewApprover(a.client, list)

	log.WithFields(log.Fields{"id": *id, "action": action}).Info("processing")

	var err error
	if action == "approve" {
		err = approver.Approve(ctx, *id)
	} else {
		err = approver.Reject(ctx, *id, *reason)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s recorded; %d accounts still listed on page 1\n", action, len(list.Users()))
	return nil
}

func (a *app) setRole(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-role", flag.ExitOnError)
	id := fs.Int("id", 0, "account id")
	role := fs.String("role", "", "new role")
	fs.Parse(args)

	if *id <= 0 {
		return errors.New("id is required")
	}

	list := views.NewUserList(a.client)
	if err := list.Reload(ctx); err != nil {
		return err
	}

	var target *models.Account
	for _, u := range list.Users() {
		if u.ID == *id {
			target = &u
			break
		}
	}
	if target == nil {
		return fmt.Errorf("no account with id %d on page 1", *id)
	}

	editor := views.NewRoleEditor(a.client, list)
	editor.Begin(*target)
	if err := editor.SetRole(models.Role(*role)); err != nil {
		editor.Cancel()
		return fmt.Errorf("%w (valid roles: %s)", err, joinRoles(editor.Options()))
	}
	if err := editor.Save(ctx); err != nil {
		return err
	}

	fmt.Printf("role of account %d set to %s\n", *id, *role)
	return nil
}

func (a *app) departments(ctx context.Context) error {
	deps, err := a.client.ListDepartments(ctx)
	if err != nil {
		return err
	}

	tw := newTable()
	fmt.Fprintln(tw, "ID\tNAME")
	for _, d := range deps {
		fmt.Fprintf(tw, "%d\t%s\n", d.ID, d.Name)
	}
	return tw.Flush()
}

func (a *app) requests(ctx context.Context) error {
	list := views.NewRequestList(a.client)
	if err := list.Reload(ctx); err != nil {
		return err
	}

	tw := newTable()
	fmt.Fprintln(tw, "ID\tSTART\tRETURN\tDESTINATION\tEMPLOYEES\tSTATUS")
	for _, r := range list.Requests() {
		fmt.Fprintf(tw, "%d\t%s %s\t%s\t%s\t%s\t%s\n",
			r.ID, r.StartDay, r.StartTime, r.ReturnDay, r.Destination,
			strings.Join(list.EmployeeNames(r), ", "), r.Status)
	}
	return tw.Flush()
}

func (a *app) requestCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("request-create", flag.ExitOnError)
	form := forms.TransportRequestForm{}
	employees := fs.String("employees", "", "comma-separated employee ids")
	fs.StringVar(&form.StartDay, "start-day", "", "start day (YYYY-MM-DD)")
	fs.StringVar(&form.StartTime, "start-time", "", "start time (HH:MM)")
	fs.StringVar(&form.ReturnDay, "return-day", "", "return day (YYYY-MM-DD)")
	fs.StringVar(&form.Destination, "destination", "", "destination")
	fs.StringVar(&form.Reason, "reason", "", "reason for the trip")
	fs.Parse(args)

	ids, err := parseEmployeeIDs(*employees)
	if err != nil {
		return err
	}
	form.Employees = ids

	if err := form.Validate(); err != nil {
		return err
	}

	list := views.NewRequestList(a.client)
	created, err := list.Submit(ctx, form.Payload())
	if err != nil {
		return err
	}

	fmt.Printf("request %d submitted (%s, %s)\n", created.ID, created.Destination, created.Status)
	return nil
}

func (a *app) history(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	filter := fs.String("filter", string(views.FilterAll), "All, approved or rejected")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	h := views.NewHistory(a.client)
	if err := h.Reload(ctx); err != nil {
		return err
	}

	h.SetFilter(views.HistoryFilter(*filter))
	h.SetPage(*page)

	tw := newTable()
	fmt.Fprintln(tw, "NAME\tEMAIL\tDECISION\tWHEN")
	for _, r := range h.Records() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.FullName, r.Email, r.Status, r.Timestamp.Format(time.RFC3339))
	}
	tw.Flush()

	fmt.Printf("page %d of %d (%s)\n", h.Page(), h.Pages(), h.Filter())
	return nil
}

func (a *app) vehicles() error {
	list := views.NewVehicleList(views.DefaultVehicles())

	tw := newTable()
	fmt.Fprintln(tw, "NAME\tPLATE\tDRIVER\tCAPACITY\tSTATUS")
	for _, v := range list.Vehicles() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", v.Name, v.PlateNumber, v.Driver, v.Capacity, v.Status)
	}
	return tw.Flush()
}

func (a *app) vehicleStatus(args []string) error {
	fs := flag.NewFlagSet("vehicle-status", flag.ExitOnError)
	plate := fs.String("plate", "", "plate number")
	status := fs.String("status", "", "Active, Service or Maintenance")
	fs.Parse(args)

	list := views.NewVehicleList(views.DefaultVehicles())
	if err := list.SetStatus(*plate, models.VehicleStatus(*status)); err != nil {
		return err
	}

	fmt.Printf("vehicle %s set to %s\n", *plate, *status)
	return nil
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// parseEmployeeIDs parses a comma-separated id list like "3,5".
func parseEmployeeIDs(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid employee id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func joinRoles(roles []models.Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

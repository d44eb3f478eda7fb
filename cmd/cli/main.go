package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fintech-hub-client/internal/bootstrap"
	"fintech-hub-client/internal/config"
	"fintech-hub-client/internal/dto"
	"fintech-hub-client/internal/service"
	"fintech-hub-client/internal/tracer"
	"fintech-hub-client/pkg/api"
	"fintech-hub-client/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/fatih/color"
)

var (
	success = color.New(color.FgGreen)
	warning = color.New(color.FgYellow)
	failure = color.New(color.FgRed)
	heading = color.New(color.FgCyan, color.Bold)
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	// Restore any persisted session before the command reads session state.
	container.Session.Hydrate()

	// Echo session events alongside command output.
	eventsDone := watchEvents(container)

	code := run(container, os.Args[1:])

	container.Close()
	<-eventsDone
	os.Exit(code)
}

func watchEvents(container *bootstrap.Container) <-chan struct{} {
	done := make(chan struct{})
	msgs, err := container.Bus.Subscribe(context.Background())
	if err != nil {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		for msg := range msgs {
			printEvent(msg)
			msg.Ack()
		}
	}()
	return done
}

func printEvent(msg *message.Message) {
	switch events.EventType(msg) {
	case events.TypeWarning:
		warning.Fprintf(os.Stderr, "warning: %s\n", string(msg.Payload))
	case events.TypeSignedIn, events.TypeSignedOut, events.TypeRegistered:
		// Commands report these outcomes themselves.
	}
}

func run(container *bootstrap.Container, args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}

	ctx := context.Background()
	var err error

	switch args[0] {
	case "login":
		err = cmdLogin(ctx, container, args[1:])
	case "register":
		err = cmdRegister(ctx, container, args[1:])
	case "logout":
		container.Session.Logout()
		success.Println("signed out")
	case "whoami":
		err = cmdWhoami(container)
	case "startups":
		err = cmdStartups(ctx, container, args[1:])
	case "investors":
		err = cmdInvestors(ctx, container, args[1:])
	case "offers":
		err = cmdOffers(ctx, container, args[1:])
	case "investments":
		err = cmdInvestments(ctx, container, args[1:])
	case "metrics":
		err = cmdMetrics(ctx, container, args[1:])
	default:
		usage()
		return 2
	}

	if err != nil {
		failure.Fprintf(os.Stderr, "error: %s\n", api.Message(err))
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: fintech-hub <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  login <email> <password>   sign in")
	fmt.Fprintln(os.Stderr, "  register [flags]           create an account")
	fmt.Fprintln(os.Stderr, "  logout                     sign out")
	fmt.Fprintln(os.Stderr, "  whoami                     show the current session")
	fmt.Fprintln(os.Stderr, "  startups [flags]           browse startups")
	fmt.Fprintln(os.Stderr, "  investors [flags]          browse investors")
	fmt.Fprintln(os.Stderr, "  offers [flags]             browse offers")
	fmt.Fprintln(os.Stderr, "  investments [flags]        browse investments")
	fmt.Fprintln(os.Stderr, "  metrics -startup <id>      browse startup metrics")
}

func cmdLogin(ctx context.Context, container *bootstrap.Container, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: login <email> <password>")
	}
	if err := container.Session.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	user := container.Session.CurrentUser()
	success.Printf("signed in as %s\n", user.DisplayName())
	if expiry, ok := container.Session.TokenExpiry(); ok {
		fmt.Printf("token expires %s\n", expiry.Format(time.RFC3339))
	}
	return nil
}

func cmdRegister(ctx context.Context, container *bootstrap.Container, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	name := fs.String("name", "", "full name")
	company := fs.String("company", "", "company")
	phone := fs.String("phone", "", "phone number")
	location := fs.String("location", "", "location")
	bio := fs.String("bio", "", "short bio")
	role := fs.String("role", "founder", "role: founder or investor")
	investorType := fs.String("investor-type", "", "investor type: angel, vc or corporate")
	legalName := fs.String("legal-name", "", "investor legal name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	draft := service.RegisterDraft{
		Email:    *email,
		Password: *password,
		FullName: *name,
		Company:  *company,
		Phone:    *phone,
		Location: *location,
		Bio:      *bio,
		Role:     *role,
	}
	if *investorType != "" || *legalName != "" {
		draft.Investor = &dto.InvestorDraft{
			Type:      *investorType,
			LegalName: *legalName,
		}
	}

	result, err := container.Session.Register(ctx, draft)
	if err != nil {
		return err
	}

	success.Printf("registered %s\n", result.User.DisplayName())
	if result.Warning != nil {
		warning.Fprintf(os.Stderr, "warning: account created, but investor profile setup failed: %s\n", api.Message(result.Warning))
	}
	return nil
}

func cmdWhoami(container *bootstrap.Container) error {
	switch container.Session.State() {
	case service.SessionAnonymous:
		fmt.Println("not signed in")
		return nil
	case service.SessionAuthenticated:
		heading.Println("current session")
	}

	if user := container.Session.CurrentUser(); user != nil {
		printJSON(user)
	} else {
		fmt.Println("token held, profile unavailable")
	}
	if expiry, ok := container.Session.TokenExpiry(); ok {
		fmt.Printf("token expires %s\n", expiry.Format(time.RFC3339))
	}
	return nil
}

func cmdStartups(ctx context.Context, container *bootstrap.Container, args []string) error {
	fs := flag.NewFlagSet("startups", flag.ContinueOnError)
	stage := fs.String("stage", "", "filter by stage")
	industry := fs.String("industry", "", "filter by industry")
	query := fs.String("q", "", "search by name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	startups, err := container.Api.ListStartups(ctx, dto.StartupFilter{
		Stage:    *stage,
		Industry: *industry,
		Query:    *query,
	})
	if err != nil {
		return err
	}
	heading.Printf("%d startup(s)\n", len(startups))
	printJSON(startups)
	return nil
}

func cmdInvestors(ctx context.Context, container *bootstrap.Container, args []string) error {
	fs := flag.NewFlagSet("investors", flag.ContinueOnError)
	investorType := fs.String("type", "", "filter by investor type")
	industry := fs.String("industry", "", "filter by preferred industry")
	stage := fs.String("stage", "", "filter by preferred stage")
	minCheck := fs.Int("min", -1, "minimum check size")
	maxCheck := fs.Int("max", -1, "maximum check size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := dto.InvestorFilter{
		Type:     *investorType,
		Industry: *industry,
		Stage:    *stage,
	}
	if *minCheck >= 0 {
		filter.MinCheck = minCheck
	}
	if *maxCheck >= 0 {
		filter.MaxCheck = maxCheck
	}

	investors, err := container.Api.SearchInvestors(ctx, filter)
	if err != nil {
		return err
	}
	heading.Printf("%d investor(s)\n", len(investors))
	printJSON(investors)
	return nil
}

func cmdOffers(ctx context.Context, container *bootstrap.Container, args []string) error {
	fs := flag.NewFlagSet("offers", flag.ContinueOnError)
	startupId := fs.String("startup", "", "filter by startup id")
	investorId := fs.String("investor", "", "filter by investor id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	offers, err := container.Api.ListOffers(ctx, dto.OfferFilter{
		StartupId:  *startupId,
		InvestorId: *investorId,
	})
	if err != nil {
		return err
	}
	heading.Printf("%d offer(s)\n", len(offers))
	printJSON(offers)
	return nil
}

func cmdInvestments(ctx context.Context, container *bootstrap.Container, args []string) error {
	fs := flag.NewFlagSet("investments", flag.ContinueOnError)
	investorId := fs.String("investor", "", "filter by investor id")
	startupId := fs.String("startup", "", "filter by startup id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	var investments interface{}
	switch {
	case *investorId != "":
		investments, err = container.Api.InvestmentsByInvestor(ctx, *investorId)
	case *startupId != "":
		investments, err = container.Api.InvestmentsByStartup(ctx, *startupId)
	default:
		investments, err = container.Api.ListInvestments(ctx)
	}
	if err != nil {
		return err
	}
	printJSON(investments)
	return nil
}

func cmdMetrics(ctx context.Context, container *bootstrap.Container, args []string) error {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	startupId := fs.String("startup", "", "startup id")
	from := fs.String("from", "", "start date (RFC 3339)")
	to := fs.String("to", "", "end date (RFC 3339)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := dto.MetricFilter{StartupId: *startupId}
	if *from != "" {
		t, err := time.Parse(time.RFC3339, *from)
		if err != nil {
			return fmt.Errorf("invalid -from: %w", err)
		}
		filter.From = t
	}
	if *to != "" {
		t, err := time.Parse(time.RFC3339, *to)
		if err != nil {
			return fmt.Errorf("invalid -to: %w", err)
		}
		filter.To = t
	}

	metrics, err := container.Api.ListMetrics(ctx, filter)
	if err != nil {
		return err
	}
	heading.Printf("%d metric snapshot(s)\n", len(metrics))
	printJSON(metrics)
	return nil
}

func printJSON(v interface{}) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(raw))
}

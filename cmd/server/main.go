package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/common-nighthawk/go-figure"

	"github.com/xhil-io/autolens-web/identity"
	"github.com/xhil-io/autolens-web/internal/config"
	"github.com/xhil-io/autolens-web/mail"
	"github.com/xhil-io/autolens-web/mail/sesmail"
	"github.com/xhil-io/autolens-web/server"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	mailer, err := newMailer(c)
	if err != nil {
		return fmt.Errorf("newMailer: %w", err)
	}

	identityClient := identity.New(c.GetAuthBaseURL(), c.GetAuthAnonKey(), c.GetAuthServiceKey())

	httpServer := &http.Server{Addr: c.GetPort(), Handler: server.New(c, identityClient, mailer)}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

// newMailer wires SES for deployed environments and a console sender in DEV
// where no AWS credentials exist.
func newMailer(c config.Config) (mail.Sender, error) {
	if c.GetEnv() == "DEV" {
		return mail.NewConsoleSender(), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(c.GetAWSRegion()))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return sesmail.NewProvider(ses.NewFromConfig(awsCfg), c.GetSupportSender()), nil
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

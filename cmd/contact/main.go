package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"marketing_site_go/contactform"
	"marketing_site_go/middleware"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

type consoleNotifier struct{}

func (consoleNotifier) Success(message string) { fmt.Println("✅ " + message) }
func (consoleNotifier) Error(message string) { fmt.Println("❌ " + message) }

func main() {
	siteURL := flag.String("url", "http://localhost:8080", "Base URL of the site")
	captcha := flag.String("captcha-token", "", "Turnstile token to send with the submission")
	flag.Parse()

	client := contactform.NewClient(*siteURL)
	if *captcha != "" {
		client.Header = http.Header{}
		client.Header.Set(middleware.TurnstileHeader, *captcha)
	}

	controller := contactform.NewController(client, consoleNotifier{})
	controller.OpenModal()

	fmt.Println("=== Contact Us ===")
	fmt.Println()

	for controller.Open {
		if err := fillForm(controller); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				os.Exit(130)
			}
			log.Fatalf("Failed to read input: %v", err)
		}

		outcome, err := controller.Submit(context.Background())
		if err != nil {
			log.Fatalf("Failed to submit: %v", err)
		}
		if outcome.Kind == contactform.OutcomeTransportFailure {
			log.Printf("Transport error: %v", outcome.Err)
		}
		if !controller.Open {
			break
		}

		retry := false
		if err := survey.AskOne(&survey.Confirm{Message: "Edit and try again?", Default: true}, &retry); err != nil || !retry {
			os.Exit(1)
		}
	}
}

// fillForm prompts for every field, keeping previous answers as defaults
func fillForm(c *contactform.Controller) error {
	prompts := []struct {
		field   string
		message string
		long    bool
	}{
		{contactform.FieldFullName, "Full name", false},
		{contactform.FieldCompany, "Company (optional)", false},
		{contactform.FieldEmail, "Email", false},
		{contactform.FieldPhone, "Phone (optional)", false},
		{contactform.FieldMessage, "Message (optional)", true},
	}

	for _, p := range prompts {
		var answer string
		var prompt survey.Prompt = &survey.Input{Message: p.message, Default: c.State.Get(p.field)}
		if p.long {
			prompt = &survey.Multiline{Message: p.message, Default: c.State.Get(p.field)}
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return err
		}
		c.SetField(p.field, answer)
	}
	return nil
}

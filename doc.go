/*
Package firstrun is a small decision engine that selects which onboarding pages to show on
the first launch of an application.

It decides on three facts: whether the platform supports configuring a default handler
(browser), whether this application already is the default, and how many times the
default browser promotion dialog has been shown. Everything else (platform checks,
persistence, page content) is injected through the interfaces in package ports.

# Decision Table

	supported | default | prior dialogs | pages
	false     |    -    |      -        | Welcome
	true      |  true   |      -        | Welcome
	true      |  false  |      0        | Welcome, DefaultBrowserPromotion
	true      |  false  |     >=1       | Welcome

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/firstrun"
		"github.com/aretw0/firstrun/pkg/adapters/file"
		"github.com/aretw0/firstrun/pkg/adapters/memory"
	)

	func main() {
		eng, err := firstrun.New(memory.NewDetector(true, false), file.New(""))
		if err != nil {
			log.Fatal(err)
		}

		plan, err := eng.BuildPageBlueprints(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		for _, page := range plan.Pages() {
			fmt.Println(page.Title)
		}
	}
*/
package firstrun

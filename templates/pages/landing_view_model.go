package pages

import "marketing_site_go/templates/components"

// LandingPage holds the content for the single marketing page
type LandingPage struct {
	Title       string
	SiteName    string
	ContactPath string
	Hero        Hero
	Features    []Feature
	Services    []Service
	Pricing     []PricingTier
	CTA         CallToAction
}

type Hero struct {
	Headline    string
	Subheadline string
	ButtonLabel string
}

type Feature struct {
	Title       string
	Description string
}

type Service struct {
	Name        string
	Description string
}

type PricingTier struct {
	Name      string
	Price     string
	Period    string
	Perks     []string
	Highlight bool
}

type CallToAction struct {
	Headline    string
	ButtonLabel string
}

// contactFormConfig is embedded in the modal so the script knows where to post
type contactFormConfig struct {
	Endpoint     string   `json:"endpoint"`
	Fields       []string `json:"fields"`
	GenericError string   `json:"genericError"`
}

func contactFormConfigJSON(endpoint string) string {
	return components.JSON(contactFormConfig{
		Endpoint:     endpoint,
		Fields:       []string{"fullName", "company", "email", "phone", "message"},
		GenericError: "Something went wrong. Please try again.",
	})
}

// DefaultLandingPage returns the stock content for the site
func DefaultLandingPage(siteName string) LandingPage {
	return LandingPage{
		Title:       siteName + " | Digital products that ship",
		SiteName:    siteName,
		ContactPath: "/api/contact",
		Hero: Hero{
			Headline:    "Build the product your customers are waiting for",
			Subheadline: "Strategy, design and engineering under one roof, from first sketch to production.",
			ButtonLabel: "Get in touch",
		},
		Features: []Feature{
			{Title: "Fast delivery", Description: "Working software in weeks, not quarters."},
			{Title: "Senior team", Description: "Every project is led by engineers with a decade of production experience."},
			{Title: "Transparent process", Description: "Weekly demos and a shared roadmap you can edit."},
		},
		Services: []Service{
			{Name: "Product design", Description: "Research, prototyping and design systems."},
			{Name: "Web platforms", Description: "Scalable backends and fast, accessible frontends."},
			{Name: "Cloud operations", Description: "Infrastructure, observability and cost control."},
		},
		Pricing: []PricingTier{
			{Name: "Starter", Price: "$4,900", Period: "per project", Perks: []string{"Discovery workshop", "Clickable prototype"}},
			{Name: "Growth", Price: "$12,000", Period: "per month", Perks: []string{"Dedicated squad", "Weekly releases", "Priority support"}, Highlight: true},
			{Name: "Enterprise", Price: "Custom", Period: "", Perks: []string{"Multiple squads", "SLA", "On-site workshops"}},
		},
		CTA: CallToAction{
			Headline:    "Ready to start your next project?",
			ButtonLabel: "Contact us",
		},
	}
}

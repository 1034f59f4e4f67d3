package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/nailyse/salon-api/internal/core/domain"
	"github.com/nailyse/salon-api/internal/core/ports"
)

// translation holds every localized string used by the email bodies.
type translation struct {
	Tagline string

	WelcomeSubject        string
	WelcomeGreeting       string
	WelcomeMessage        string
	WelcomeAccountCreated string
	WelcomeDiscover       string
	WelcomeCTA            string
	WelcomeSeeYou         string

	AppointmentSubject      string
	AppointmentTitle        string
	AppointmentGreeting     string
	AppointmentConfirmed    string
	AppointmentClient       string
	AppointmentEmail        string
	AppointmentPhone        string
	AppointmentImportant    string
	AppointmentCancelNotice string

	OrderSubject  string
	OrderTitle    string
	OrderGreeting string
	OrderReceived string
	OrderSummary  string
	OrderQuantity string
	OrderTotal    string
	OrderShipping string
	OrderCTA      string

	FooterSalonName string
	FooterRights    string

	DateFormat string
}

var translations = map[string]translation{
	"fr": {
		Tagline: "L'art de la beauté",

		WelcomeSubject:        "Bienvenue chez Nailyse",
		WelcomeGreeting:       "Bienvenue",
		WelcomeMessage:        "Nous sommes ravis de vous accueillir dans l'univers Nailyse.",
		WelcomeAccountCreated: "Votre compte a été créé avec succès.",
		WelcomeDiscover:       "Découvrez notre collection de produits de qualité professionnelle et réservez votre prochain rendez-vous en quelques clics.",
		WelcomeCTA:            "Découvrir la boutique",
		WelcomeSeeYou:         "À très bientôt dans notre salon !",

		AppointmentSubject:      "Confirmation de votre rendez-vous",
		AppointmentTitle:        "Rendez-vous confirmé",
		AppointmentGreeting:     "Bonjour",
		AppointmentConfirmed:    "Votre rendez-vous chez Nailyse est confirmé.",
		AppointmentClient:       "Client",
		AppointmentEmail:        "Email",
		AppointmentPhone:        "Téléphone",
		AppointmentImportant:    "Important",
		AppointmentCancelNotice: "En cas d'empêchement, merci de nous prévenir au moins 24h à l'avance.",

		OrderSubject:  "Confirmation de votre commande",
		OrderTitle:    "Merci pour votre commande !",
		OrderGreeting: "Bonjour",
		OrderReceived: "Nous avons bien reçu votre commande et nous vous en remercions.",
		OrderSummary:  "Récapitulatif de votre commande",
		OrderQuantity: "Quantité",
		OrderTotal:    "Total",
		OrderShipping: "Votre commande sera préparée avec soin et expédiée dans les plus brefs délais.",
		OrderCTA:      "Continuer mes achats",

		FooterSalonName: "Salon de beauté",
		FooterRights:    "Tous droits réservés.",

		DateFormat: "02/01/2006 à 15h04",
	},
	"en": {
		Tagline: "The art of beauty",

		WelcomeSubject:        "Welcome to Nailyse",
		WelcomeGreeting:       "Welcome",
		WelcomeMessage:        "We are delighted to welcome you to the Nailyse universe.",
		WelcomeAccountCreated: "Your account has been created successfully.",
		WelcomeDiscover:       "Discover our collection of professional quality products and book your next appointment in just a few clicks.",
		WelcomeCTA:            "Discover the shop",
		WelcomeSeeYou:         "See you soon at our salon!",

		AppointmentSubject:      "Your appointment confirmation",
		AppointmentTitle:        "Appointment confirmed",
		AppointmentGreeting:     "Hello",
		AppointmentConfirmed:    "Your appointment at Nailyse is confirmed.",
		AppointmentClient:       "Client",
		AppointmentEmail:        "Email",
		AppointmentPhone:        "Phone",
		AppointmentImportant:    "Important",
		AppointmentCancelNotice: "If you need to cancel, please let us know at least 24 hours in advance.",

		OrderSubject:  "Your order confirmation",
		OrderTitle:    "Thank you for your order!",
		OrderGreeting: "Hello",
		OrderReceived: "We have received your order and thank you for your purchase.",
		OrderSummary:  "Order summary",
		OrderQuantity: "Quantity",
		OrderTotal:    "Total",
		OrderShipping: "Your order will be carefully prepared and shipped as soon as possible.",
		OrderCTA:      "Continue shopping",

		FooterSalonName: "Beauty salon",
		FooterRights:    "All rights reserved.",

		DateFormat: "Jan 2, 2006 at 3:04 PM",
	},
}

// langOrFallback normalises a language code; anything but "en" is French.
func langOrFallback(lang string) string {
	if lang == "en" {
		return "en"
	}
	return "fr"
}

// layoutTmpl is the shared visual chrome: NAILYSE header, content card,
// footer. Only the body changes per event type.
var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; background-color: #FAF7F2; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;">
<table role="presentation" style="width: 100%; border-collapse: collapse;">
<tr><td align="center" style="padding: 40px 20px;">
<table role="presentation" style="width: 100%; max-width: 600px; border-collapse: collapse;">
<tr><td style="text-align: center; padding-bottom: 30px;">
<h1 style="margin: 0; font-size: 36px; font-weight: 300; color: #722F37; letter-spacing: 4px; font-family: Georgia, serif;">NAILYSE</h1>
<p style="margin: 8px 0 0 0; font-size: 12px; color: #C9A87C; letter-spacing: 2px; text-transform: uppercase;">{{.Tagline}}</p>
</td></tr>
<tr><td>
<table role="presentation" style="width: 100%; border-collapse: collapse; background-color: #FFFFFF; border-radius: 8px; overflow: hidden;">
<tr><td style="height: 4px; background: linear-gradient(90deg, #722F37 0%, #C9A87C 50%, #722F37 100%);"></td></tr>
<tr><td style="padding: 40px;">{{.Body}}</td></tr>
</table>
</td></tr>
<tr><td style="text-align: center; padding-top: 30px;">
<p style="margin: 0; font-size: 12px; color: #A89B8C;">Nailyse · {{.SalonName}}</p>
<p style="margin: 4px 0 0 0; font-size: 12px; color: #A89B8C;">&copy; {{.Year}} Nailyse. {{.Rights}}</p>
</td></tr>
</table>
</td></tr>
</table>
</body>
</html>`))

type layoutData struct {
	Lang      string
	Title     string
	Tagline   string
	Body      template.HTML
	SalonName string
	Rights    string
	Year      int
}

// Renderer builds the complete HTML documents for the three email events.
// The frontend URL feeds the call-to-action links.
type Renderer struct {
	frontendURL string
}

func NewRenderer(frontendURL string) *Renderer {
	return &Renderer{frontendURL: frontendURL}
}

func (r *Renderer) render(lang, title string, body template.HTML) (string, error) {
	t := translations[lang]
	var sb strings.Builder
	err := layoutTmpl.Execute(&sb, layoutData{
		Lang:      lang,
		Title:     title,
		Tagline:   t.Tagline,
		Body:      body,
		SalonName: t.FooterSalonName,
		Rights:    t.FooterRights,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}
	return sb.String(), nil
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<h2 style="margin: 0 0 16px 0; color: #722F37; font-weight: 400;">{{.T.WelcomeGreeting}} {{.Name}} !</h2>
<p style="margin: 0 0 12px 0; color: #4A4441; line-height: 1.6;">{{.T.WelcomeMessage}}</p>
<p style="margin: 0 0 12px 0; color: #4A4441; line-height: 1.6;">{{.T.WelcomeAccountCreated}}</p>
<p style="margin: 0 0 24px 0; color: #4A4441; line-height: 1.6;">{{.T.WelcomeDiscover}}</p>
<p style="text-align: center; margin: 0 0 24px 0;">
<a href="{{.ShopURL}}" style="display: inline-block; padding: 14px 32px; background-color: #722F37; color: #FFFFFF; text-decoration: none; border-radius: 4px; letter-spacing: 1px;">{{.T.WelcomeCTA}}</a>
</p>
<p style="margin: 0; color: #4A4441;">{{.T.WelcomeSeeYou}}</p>`))

// Welcome returns subject and HTML body of the post-registration email.
func (r *Renderer) Welcome(user *domain.User, lang string) (string, string, error) {
	lang = langOrFallback(lang)
	t := translations[lang]

	var body strings.Builder
	err := welcomeTmpl.Execute(&body, struct {
		T       translation
		Name    string
		ShopURL string
	}{t, user.FullName, r.frontendURL + "/shop"})
	if err != nil {
		return "", "", fmt.Errorf("render welcome body: %w", err)
	}

	html, err := r.render(lang, t.WelcomeSubject, template.HTML(body.String()))
	return t.WelcomeSubject, html, err
}

var appointmentTmpl = template.Must(template.New("appointment").Parse(`
<h2 style="margin: 0 0 16px 0; color: #722F37; font-weight: 400;">{{.T.AppointmentTitle}}</h2>
<p style="margin: 0 0 12px 0; color: #4A4441; line-height: 1.6;">{{.T.AppointmentGreeting}} {{.A.ClientName}},</p>
<p style="margin: 0 0 24px 0; color: #4A4441; line-height: 1.6;">{{.T.AppointmentConfirmed}}</p>
<table role="presentation" style="width: 100%; border-collapse: collapse; background-color: #FAF7F2; border-radius: 4px;">
<tr><td style="padding: 20px;">
<p style="margin: 0 0 8px 0; font-size: 20px; color: #722F37;">{{.Date}}</p>
<p style="margin: 0 0 4px 0; color: #4A4441;">{{.T.AppointmentClient}} : {{.A.ClientName}}</p>
<p style="margin: 0 0 4px 0; color: #4A4441;">{{.T.AppointmentEmail}} : {{.A.ClientEmail}}</p>
{{if .A.ClientPhone}}<p style="margin: 0; color: #4A4441;">{{.T.AppointmentPhone}} : {{.A.ClientPhone}}</p>{{end}}
</td></tr>
</table>
<p style="margin: 24px 0 0 0; color: #4A4441; line-height: 1.6;"><strong>{{.T.AppointmentImportant}} :</strong> {{.T.AppointmentCancelNotice}}</p>`))

// AppointmentConfirmation returns subject and HTML body of the booking email.
func (r *Renderer) AppointmentConfirmation(a *domain.Appointment, lang string) (string, string, error) {
	lang = langOrFallback(lang)
	t := translations[lang]

	var body strings.Builder
	err := appointmentTmpl.Execute(&body, struct {
		T    translation
		A    *domain.Appointment
		Date string
	}{t, a, a.StartAt.Format(t.DateFormat)})
	if err != nil {
		return "", "", fmt.Errorf("render appointment body: %w", err)
	}

	subject := t.AppointmentSubject + " - Nailyse"
	html, err := r.render(lang, t.AppointmentSubject, template.HTML(body.String()))
	return subject, html, err
}

var orderTmpl = template.Must(template.New("order").Parse(`
<h2 style="margin: 0 0 16px 0; color: #722F37; font-weight: 400;">{{.T.OrderTitle}}</h2>
<p style="margin: 0 0 12px 0; color: #4A4441; line-height: 1.6;">{{.T.OrderGreeting}} {{.Name}},</p>
<p style="margin: 0 0 24px 0; color: #4A4441; line-height: 1.6;">{{.T.OrderReceived}}</p>
<p style="margin: 0 0 8px 0; color: #722F37;">{{.T.OrderSummary}}</p>
<table role="presentation" style="width: 100%; border-collapse: collapse;">
{{range .Items}}<tr>
<td style="padding: 8px 0; border-bottom: 1px solid #EFE9E1; color: #4A4441;">{{.Name}} <span style="color: #A89B8C;">({{$.T.OrderQuantity}} : {{.Quantity}})</span></td>
<td style="padding: 8px 0; border-bottom: 1px solid #EFE9E1; text-align: right; color: #4A4441;">{{printf "%.2f" .LineTotal}} &euro;</td>
</tr>{{end}}
<tr>
<td style="padding: 12px 0; color: #722F37; font-weight: bold;">{{.T.OrderTotal}}</td>
<td style="padding: 12px 0; text-align: right; color: #722F37; font-weight: bold;">{{printf "%.2f" .Total}} &euro;</td>
</tr>
</table>
<p style="margin: 24px 0 24px 0; color: #4A4441; line-height: 1.6;">{{.T.OrderShipping}}</p>
<p style="text-align: center; margin: 0;">
<a href="{{.ShopURL}}" style="display: inline-block; padding: 14px 32px; background-color: #722F37; color: #FFFFFF; text-decoration: none; border-radius: 4px; letter-spacing: 1px;">{{.T.OrderCTA}}</a>
</p>`))

type orderLine struct {
	Name      string
	Quantity  int
	LineTotal float64
}

// OrderConfirmation returns subject and HTML body of the order email.
func (r *Renderer) OrderConfirmation(clientName string, items []ports.OrderItem, total float64, lang string) (string, string, error) {
	lang = langOrFallback(lang)
	t := translations[lang]

	lines := make([]orderLine, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, orderLine{
			Name:      item.Name,
			Quantity:  qty,
			LineTotal: item.Price * float64(qty),
		})
	}

	var body strings.Builder
	err := orderTmpl.Execute(&body, struct {
		T       translation
		Name    string
		Items   []orderLine
		Total   float64
		ShopURL string
	}{t, clientName, lines, total, r.frontendURL + "/shop"})
	if err != nil {
		return "", "", fmt.Errorf("render order body: %w", err)
	}

	subject := t.OrderSubject + " - Nailyse"
	html, err := r.render(lang, t.OrderSubject, template.HTML(body.String()))
	return subject, html, err
}

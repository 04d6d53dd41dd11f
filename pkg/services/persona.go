package services

import (
	"strconv"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"github.com/praxiotech/resto-insights/pkg/models"
)

// personaTier is one customer archetype plus the pitch templates rendered for
// restaurants in that tier. Tiers are fixed; selection runs on rating and
// price-tier thresholds.
type personaTier struct {
	primary    string
	segment    string
	motivation string
	pitchEN    *template.Template
	pitchDE    *template.Template
}

// pitchFields are the values interpolated into every pitch template.
type pitchFields struct {
	Name        string
	Rating      string // one decimal
	Reviews     string // thousands-grouped
	ResponsePct string // whole percent
}

var (
	upscaleTier = personaTier{
		primary:    "The Upscale Experience Seeker",
		segment:    "Corporate Dinner / Special Occasion",
		motivation: "Seeks prestige, Instagram-worthy moments, and flawless service. Books via OpenTable or direct website.",
		pitchEN: template.Must(template.New("upscale_en").Parse(
			"{{.Name}} is already exceptional -- rated {{.Rating}} stars with over {{.Reviews}} reviews. " +
				"But with only {{.ResponsePct}}% of customer reviews receiving a reply, you're leaving trust " +
				"and revenue on the table. High-spending diners read owner responses before booking. " +
				"Praxiotech's AI Review Manager ensures every guest feels heard, turning 4-star experiences " +
				"into loyal 5-star advocates. Investment: 120 EUR/mo. Expected return: 2-3x booking uplift in 90 days.")),
		pitchDE: template.Must(template.New("upscale_de").Parse(
			"{{.Name}} ist bereits ausgezeichnet -- {{.Rating}} Sterne mit {{.Reviews}} Bewertungen. " +
				"Doch nur {{.ResponsePct}}% der Gaeste erhalten eine Antwort. " +
				"Mit Praxiotechs KI-Bewertungsmanagement verwandeln wir stille Gaeste in treue Stammkunden. " +
				"Investition: 120 EUR/Monat. ROI innerhalb von 90 Tagen sichtbar.")),
	}
	establishedTier = personaTier{
		primary:    "The Dinner Date Romantic",
		segment:    "Business Date / Luncher",
		motivation: "Values speed and digital convenience. Most likely to book via mobile. Reads reviews on Google before deciding.",
		pitchEN: template.Must(template.New("established_en").Parse(
			"{{.Name}} commands a strong {{.Rating}}-star reputation across {{.Reviews}} reviews. " +
				"However, with a {{.ResponsePct}}% response rate, the digital conversation is one-sided. " +
				"Top 3 competitors average 85%+ responsiveness. Praxiotech closes this gap: AI responses, " +
				"review campaigns, weekly reports -- 120 EUR/month. " +
				"This is the difference between being found and being chosen.")),
		pitchDE: template.Must(template.New("established_de").Parse(
			"{{.Name}} hat {{.Rating}} Sterne mit {{.Reviews}} Rezensionen. " +
				"Nur {{.ResponsePct}}% Antwortrate vs. 85% der Top-Konkurrenz. " +
				"Praxiotech schliesst diese Luecke: KI-Antworten, Bewertungskampagnen, woechentliche Reports -- 120 EUR/Monat.")),
	}
	explorerTier = personaTier{
		primary:    "The Curious Explorer",
		segment:    "Walk-in / Discovery Diner",
		motivation: "Discovers restaurants through Google Maps and social proof. Heavily influenced by recent review activity.",
		pitchEN: template.Must(template.New("explorer_en").Parse(
			"{{.Name}} has solid foundations with a {{.Rating}} rating and {{.Reviews}} reviews. " +
				"Praxiotech targets three levers: fresh review acquisition, responsiveness automation, " +
				"and Google profile optimization. Est. 15-25% increase in foot traffic within 60 days.")),
		pitchDE: template.Must(template.New("explorer_de").Parse(
			"{{.Name}} hat solide {{.Rating}} Sterne. Praxiotech: neue Bewertungen gewinnen, " +
				"Antworten automatisieren, Google-Profil optimieren. +15-25% mehr Laufkundschaft in 60 Tagen.")),
	}
)

// Persona selects the customer archetype for the named restaurant and renders
// the English and German sales pitches. An unknown name renders the explorer
// tier over neutral placeholder figures rather than failing.
func (s *ScoringEngine) Persona(name string, restaurants *models.RestaurantSet) models.Persona {
	rating, price, revCount, resRate := 4.0, models.DefaultPrice, 100, 0.0
	if r, ok := restaurants.ByName(name); ok {
		rating = r.RatingN
		price = r.Price
		revCount = r.ReviewCountN
		resRate = r.ResponseRate
	} else {
		s.logger.Debug("Restaurant not found for persona", zap.String("name", name))
	}

	tier := explorerTier
	switch {
	case strings.Contains(price, "Mehr") || rating >= 4.7:
		tier = upscaleTier
	case rating >= 4.4:
		tier = establishedTier
	}

	fields := pitchFields{
		Name:        name,
		Rating:      strconv.FormatFloat(rating, 'f', 1, 64),
		Reviews:     groupThousands(revCount),
		ResponsePct: strconv.FormatFloat(resRate*100, 'f', 0, 64),
	}

	return models.Persona{
		Primary:    tier.primary,
		Segment:    tier.segment,
		Motivation: tier.motivation,
		PitchEN:    renderPitch(tier.pitchEN, fields, s.logger),
		PitchDE:    renderPitch(tier.pitchDE, fields, s.logger),
	}
}

func renderPitch(tmpl *template.Template, fields pitchFields, logger *zap.Logger) string {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, fields); err != nil {
		logger.Error("Failed to render pitch template",
			zap.String("template", tmpl.Name()),
			zap.Error(err))
		return ""
	}
	return sb.String()
}

// groupThousands formats n with comma separators ("1,234").
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

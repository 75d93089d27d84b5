package entity

import (
	"encoding/json"
	"fmt"
)

// Content section names. These are the top-level keys of the aggregate
// site-content document exchanged with the upstream CMS.
const (
	SectionGeneral      = "general"
	SectionHome         = "home"
	SectionCategoryPage = "categoryPage"
	SectionFooter       = "footer"
	SectionLegal        = "legal"
	SectionSettings     = "settings"
	SectionPayment      = "payment"
	SectionSecurity     = "security"
	SectionCategories   = "categories"
	SectionBlogPosts    = "blogPosts"
	SectionCollections  = "collections"
	SectionRedirects    = "redirects"
)

// MergePolicy declares how a section is combined during a merge.
// Object sections merge key-by-key one level deep; array sections are
// replaced wholesale. The policy is fixed per section, never inferred
// from the payload shape.
type MergePolicy int

const (
	MergeShallow MergePolicy = iota
	ReplaceWhole
)

// SectionPolicies maps every known section to its merge policy.
var SectionPolicies = map[string]MergePolicy{
	SectionGeneral:      MergeShallow,
	SectionHome:         MergeShallow,
	SectionCategoryPage: MergeShallow,
	SectionFooter:       MergeShallow,
	SectionLegal:        MergeShallow,
	SectionSettings:     MergeShallow,
	SectionPayment:      MergeShallow,
	SectionSecurity:     MergeShallow,
	SectionCategories:   ReplaceWhole,
	SectionBlogPosts:    ReplaceWhole,
	SectionCollections:  ReplaceWhole,
	SectionRedirects:    ReplaceWhole,
}

type GeneralContent struct {
	CompanyName string `json:"companyName"`
	LogoText    string `json:"logoText"`
	Tagline     string `json:"tagline"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	VATNumber   string `json:"vatNumber"`
}

type HomeContent struct {
	HeroTitle     string `json:"heroTitle"`
	HeroSubtitle  string `json:"heroSubtitle"`
	HeroImage     string `json:"heroImage"`
	HeroCTA       string `json:"heroCta"`
	FeaturedTitle string `json:"featuredTitle"`
	AboutBlurb    string `json:"aboutBlurb"`
}

type CategoryPageContent struct {
	Title     string `json:"title"`
	Intro     string `json:"intro"`
	MetaTitle string `json:"metaTitle"`
}

type FooterContent struct {
	AboutText  string `json:"aboutText"`
	Copyright  string `json:"copyright"`
	SupportURL string `json:"supportUrl"`
}

type LegalContent struct {
	PrivacyPolicy string `json:"privacyPolicy"`
	Terms         string `json:"terms"`
	Returns       string `json:"returns"`
	Shipping      string `json:"shipping"`
}

type SiteSettings struct {
	SiteTitle       string `json:"siteTitle"`
	MetaDescription string `json:"metaDescription"`
	Favicon         string `json:"favicon"`
	FaviconDark     string `json:"faviconDark"`
	CanonicalBase   string `json:"canonicalBase"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

type PaymentConfig struct {
	BankName      string   `json:"bankName"`
	AccountNumber string   `json:"accountNumber"`
	IBAN          string   `json:"iban"`
	Methods       []string `json:"methods"`
	PONote        string   `json:"poNote"`
}

type SecurityConfig struct {
	AdminEmails      []string `json:"adminEmails"`
	SessionTimeout   int      `json:"sessionTimeout"`
	RequireTwoFactor bool     `json:"requireTwoFactor"`
}

type Collection struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Products []string `json:"products"`
}

type Redirect struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Permanent bool   `json:"permanent"`
}

// ContentState is the aggregate site-content document. Every section
// present in the defaults is present in any merged result.
type ContentState struct {
	General      GeneralContent      `json:"general"`
	Home         HomeContent         `json:"home"`
	CategoryPage CategoryPageContent `json:"categoryPage"`
	Footer       FooterContent       `json:"footer"`
	Legal        LegalContent        `json:"legal"`
	Settings     SiteSettings        `json:"settings"`
	Payment      PaymentConfig       `json:"payment"`
	Security     SecurityConfig      `json:"security"`
	Categories   []Category          `json:"categories"`
	BlogPosts    []BlogPost          `json:"blogPosts"`
	Collections  []Collection        `json:"collections"`
	Redirects    []Redirect          `json:"redirects"`
}

// ContentPatch is a partial content document keyed by section name.
// Sections absent from the patch are left untouched by Apply.
type ContentPatch map[string]json.RawMessage

// Sections returns the patched section names in a stable order.
func (p ContentPatch) Sections() []string {
	names := make([]string, 0, len(p))
	for _, name := range AllSections() {
		if _, ok := p[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// AllSections lists every known section name in document order.
func AllSections() []string {
	return []string{
		SectionGeneral, SectionHome, SectionCategoryPage, SectionFooter,
		SectionLegal, SectionSettings, SectionPayment, SectionSecurity,
		SectionCategories, SectionBlogPosts, SectionCollections, SectionRedirects,
	}
}

// Apply merges a patch into the state following the per-section policy:
// object sections are decoded over a copy of the current section, so
// keys present in the patch overwrite and absent keys are kept; array
// sections are replaced wholesale. Unknown sections are reported so the
// caller can decide whether to log or reject.
func (s *ContentState) Apply(patch ContentPatch) error {
	for name, raw := range patch {
		if err := s.applySection(name, raw); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentState) applySection(name string, raw json.RawMessage) error {
	switch name {
	case SectionGeneral:
		sec := s.General
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.General = sec
	case SectionHome:
		sec := s.Home
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Home = sec
	case SectionCategoryPage:
		sec := s.CategoryPage
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.CategoryPage = sec
	case SectionFooter:
		sec := s.Footer
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Footer = sec
	case SectionLegal:
		sec := s.Legal
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Legal = sec
	case SectionSettings:
		sec := s.Settings
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Settings = sec
	case SectionPayment:
		sec := s.Payment
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Payment = sec
	case SectionSecurity:
		sec := s.Security
		if err := json.Unmarshal(raw, &sec); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Security = sec
	case SectionCategories:
		var v []Category
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Categories = v
	case SectionBlogPosts:
		var v []BlogPost
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.BlogPosts = v
	case SectionCollections:
		var v []Collection
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Collections = v
	case SectionRedirects:
		var v []Redirect
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
		s.Redirects = v
	default:
		return fmt.Errorf("unknown content section %q", name)
	}
	return nil
}

// Section returns the current value of a named section.
func (s *ContentState) Section(name string) (interface{}, bool) {
	switch name {
	case SectionGeneral:
		return s.General, true
	case SectionHome:
		return s.Home, true
	case SectionCategoryPage:
		return s.CategoryPage, true
	case SectionFooter:
		return s.Footer, true
	case SectionLegal:
		return s.Legal, true
	case SectionSettings:
		return s.Settings, true
	case SectionPayment:
		return s.Payment, true
	case SectionSecurity:
		return s.Security, true
	case SectionCategories:
		return s.Categories, true
	case SectionBlogPosts:
		return s.BlogPosts, true
	case SectionCollections:
		return s.Collections, true
	case SectionRedirects:
		return s.Redirects, true
	}
	return nil, false
}

// Backfill restores the critical storefront fields from defaults when
// they are still empty after a merge. A content payload that drops the
// hero image or favicon would otherwise blank the storefront.
func (s *ContentState) Backfill(defaults ContentState) {
	if s.Home.HeroImage == "" {
		s.Home.HeroImage = defaults.Home.HeroImage
	}
	if s.General.LogoText == "" {
		s.General.LogoText = defaults.General.LogoText
	}
	if s.Settings.Favicon == "" {
		s.Settings.Favicon = defaults.Settings.Favicon
	}
	if s.Legal.PrivacyPolicy == "" {
		s.Legal.PrivacyPolicy = defaults.Legal.PrivacyPolicy
	}
}

// MergeLocal combines a locally persisted document with the defaults.
// The enumerated object sections (general, home, footer, settings,
// payment) merge field-by-field with local values winning when set; the
// categories array and every remaining section are taken wholesale from
// local when present, else from defaults. Callers must not assume any
// merge deeper than this.
func MergeLocal(defaults, local ContentState) ContentState {
	out := defaults

	out.General = mergeGeneral(defaults.General, local.General)
	out.Home = mergeHome(defaults.Home, local.Home)
	out.Footer = mergeFooter(defaults.Footer, local.Footer)
	out.Settings = mergeSettings(defaults.Settings, local.Settings)
	out.Payment = mergePayment(defaults.Payment, local.Payment)

	if len(local.Categories) > 0 {
		out.Categories = local.Categories
	}

	if local.CategoryPage != (CategoryPageContent{}) {
		out.CategoryPage = local.CategoryPage
	}
	if local.Legal != (LegalContent{}) {
		out.Legal = local.Legal
	}
	if len(local.Security.AdminEmails) > 0 || local.Security.SessionTimeout != 0 || local.Security.RequireTwoFactor {
		out.Security = local.Security
	}
	if len(local.BlogPosts) > 0 {
		out.BlogPosts = local.BlogPosts
	}
	if len(local.Collections) > 0 {
		out.Collections = local.Collections
	}
	if len(local.Redirects) > 0 {
		out.Redirects = local.Redirects
	}

	return out
}

func mergeGeneral(d, l GeneralContent) GeneralContent {
	if l.CompanyName != "" {
		d.CompanyName = l.CompanyName
	}
	if l.LogoText != "" {
		d.LogoText = l.LogoText
	}
	if l.Tagline != "" {
		d.Tagline = l.Tagline
	}
	if l.Email != "" {
		d.Email = l.Email
	}
	if l.Phone != "" {
		d.Phone = l.Phone
	}
	if l.Address != "" {
		d.Address = l.Address
	}
	if l.VATNumber != "" {
		d.VATNumber = l.VATNumber
	}
	return d
}

func mergeHome(d, l HomeContent) HomeContent {
	if l.HeroTitle != "" {
		d.HeroTitle = l.HeroTitle
	}
	if l.HeroSubtitle != "" {
		d.HeroSubtitle = l.HeroSubtitle
	}
	if l.HeroImage != "" {
		d.HeroImage = l.HeroImage
	}
	if l.HeroCTA != "" {
		d.HeroCTA = l.HeroCTA
	}
	if l.FeaturedTitle != "" {
		d.FeaturedTitle = l.FeaturedTitle
	}
	if l.AboutBlurb != "" {
		d.AboutBlurb = l.AboutBlurb
	}
	return d
}

func mergeFooter(d, l FooterContent) FooterContent {
	if l.AboutText != "" {
		d.AboutText = l.AboutText
	}
	if l.Copyright != "" {
		d.Copyright = l.Copyright
	}
	if l.SupportURL != "" {
		d.SupportURL = l.SupportURL
	}
	return d
}

func mergeSettings(d, l SiteSettings) SiteSettings {
	if l.SiteTitle != "" {
		d.SiteTitle = l.SiteTitle
	}
	if l.MetaDescription != "" {
		d.MetaDescription = l.MetaDescription
	}
	if l.Favicon != "" {
		d.Favicon = l.Favicon
	}
	if l.FaviconDark != "" {
		d.FaviconDark = l.FaviconDark
	}
	if l.CanonicalBase != "" {
		d.CanonicalBase = l.CanonicalBase
	}
	if l.MaintenanceMode {
		d.MaintenanceMode = true
	}
	return d
}

func mergePayment(d, l PaymentConfig) PaymentConfig {
	if l.BankName != "" {
		d.BankName = l.BankName
	}
	if l.AccountNumber != "" {
		d.AccountNumber = l.AccountNumber
	}
	if l.IBAN != "" {
		d.IBAN = l.IBAN
	}
	if len(l.Methods) > 0 {
		d.Methods = l.Methods
	}
	if l.PONote != "" {
		d.PONote = l.PONote
	}
	return d
}

// DefaultContent returns the built-in fallback document used before the
// upstream CMS has ever been reached.
func DefaultContent() ContentState {
	return ContentState{
		General: GeneralContent{
			CompanyName: "Rackline Systems",
			LogoText:    "RACKLINE",
			Tagline:     "Enterprise server & networking hardware",
			Email:       "sales@rackline.example",
			Phone:       "+44 20 0000 0000",
			Address:     "Unit 4, Datacentre Park, Slough",
		},
		Home: HomeContent{
			HeroTitle:     "Refurbished enterprise hardware, warrantied",
			HeroSubtitle:  "Dell, HPE and Cisco kit tested and configured to order",
			HeroImage:     "/uploads/hero-rack.jpg",
			HeroCTA:       "Browse catalog",
			FeaturedTitle: "Popular configurations",
			AboutBlurb:    "We supply rack servers, switches and storage to businesses across Europe.",
		},
		CategoryPage: CategoryPageContent{
			Title: "Browse by category",
			Intro: "All hardware is tested and ships with warranty.",
		},
		Footer: FooterContent{
			AboutText: "Rackline Systems supplies refurbished enterprise hardware.",
			Copyright: "Rackline Systems Ltd",
		},
		Legal: LegalContent{
			PrivacyPolicy: "We only store the data needed to fulfil your order.",
			Terms:         "All sales are subject to our standard terms of business.",
		},
		Settings: SiteSettings{
			SiteTitle:       "Rackline Systems",
			MetaDescription: "Refurbished servers, switches and storage with warranty.",
			Favicon:         "/favicon.ico",
			FaviconDark:     "/favicon-dark.ico",
		},
		Payment: PaymentConfig{
			Methods: []string{"bank-transfer", "card", "purchase-order"},
		},
		Security: SecurityConfig{
			SessionTimeout: 3600,
		},
		Categories:  []Category{},
		BlogPosts:   []BlogPost{},
		Collections: []Collection{},
		Redirects:   []Redirect{},
	}
}

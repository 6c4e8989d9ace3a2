package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("contactkind", validateContactKind)
	_ = validatorInstance.RegisterValidation("anchor", validateAnchor)
}

// ContactKind identifies how a contact entry is displayed.
type ContactKind string

const (
	ContactPhone     ContactKind = "phone"
	ContactEmail     ContactKind = "email"
	ContactAddress   ContactKind = "address"
	ContactInstagram ContactKind = "instagram"
	ContactFacebook  ContactKind = "facebook"
)

func validateContactKind(fl validator.FieldLevel) bool {
	switch ContactKind(fl.Field().String()) {
	case ContactPhone, ContactEmail, ContactAddress, ContactInstagram, ContactFacebook:
		return true
	}
	return false
}

// validateAnchor accepts lowercase fragment identifiers such as "about".
func validateAnchor(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return false
		}
	}
	return true
}

// Image is a display image referenced by URL.
type Image struct {
	Src string `yaml:"src" toml:"src" validate:"required"`
	Alt string `yaml:"alt" toml:"alt" validate:"required"`
}

// ServiceItem is a single priced offering. Price is pre-formatted, e.g. "$60+".
type ServiceItem struct {
	Name  string `yaml:"name" toml:"name" validate:"required"`
	Price string `yaml:"price" toml:"price" validate:"required"`
}

// ServiceCategory groups priced offerings under one services tab.
type ServiceCategory struct {
	ID    string        `yaml:"id" toml:"id" validate:"required,anchor"`
	Label string        `yaml:"label" toml:"label" validate:"required"`
	Items []ServiceItem `yaml:"items" toml:"items" validate:"min=1,dive"`
}

// Testimonial is a client quote.
type Testimonial struct {
	Author string `yaml:"author" toml:"author" validate:"required"`
	Quote  string `yaml:"quote" toml:"quote" validate:"required"`
}

// ContactEntry is one line of the business details card.
type ContactEntry struct {
	Kind ContactKind `yaml:"kind" toml:"kind" validate:"contactkind"`
	Text string      `yaml:"text" toml:"text" validate:"required"`
	Link string      `yaml:"link,omitempty" toml:"link,omitempty"`
}

// Hero is the banner at the top of the page.
type Hero struct {
	Heading string `yaml:"heading" toml:"heading" validate:"required"`
	Tagline string `yaml:"tagline" toml:"tagline"`
	Image   *Image `yaml:"image" toml:"image" validate:"omitempty"`
}

// About is the introduction section and its image carousel.
type About struct {
	Heading    string   `yaml:"heading" toml:"heading" validate:"required"`
	Paragraphs []string `yaml:"paragraphs" toml:"paragraphs"`
	Images     []Image  `yaml:"images" toml:"images" validate:"min=1,dive"`
}

// Catalog is the static content of the site: every table the page renders.
type Catalog struct {
	Business     string            `yaml:"business" toml:"business" validate:"required"`
	Logo         *Image            `yaml:"logo" toml:"logo" validate:"omitempty"`
	Nav          []string          `yaml:"nav" toml:"nav" validate:"dive,anchor"`
	Hero         Hero              `yaml:"hero" toml:"hero"`
	About        About             `yaml:"about" toml:"about"`
	Gallery      []Image           `yaml:"gallery" toml:"gallery" validate:"dive"`
	Services     []ServiceCategory `yaml:"services" toml:"services" validate:"min=1,unique=ID,dive"`
	Testimonials []Testimonial     `yaml:"testimonials" toml:"testimonials" validate:"dive"`
	Contact      []ContactEntry    `yaml:"contact" toml:"contact" validate:"dive"`
	Year         int               `yaml:"year" toml:"year" validate:"gte=2000"`
}

// Validate checks the catalog for structural problems. All failures wrap
// ErrInvalidCatalog.
func (c *Catalog) Validate() error {
	if err := validatorInstance.Struct(c); err != nil {
		var msgs []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
		} else {
			msgs = append(msgs, err.Error())
		}
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(msgs, "; "))
	}
	return nil
}

// CategoryIDs returns the service category identifiers in display order.
func (c *Catalog) CategoryIDs() []string {
	ids := make([]string, len(c.Services))
	for i, s := range c.Services {
		ids[i] = s.ID
	}
	return ids
}

// Category looks up a service category by id.
func (c *Catalog) Category(id string) (ServiceCategory, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceCategory{}, false
}

// ContactOf returns the first entry of the given kind, if any.
func (c *Catalog) ContactOf(kind ContactKind) (ContactEntry, bool) {
	for _, e := range c.Contact {
		if e.Kind == kind {
			return e, true
		}
	}
	return ContactEntry{}, false
}

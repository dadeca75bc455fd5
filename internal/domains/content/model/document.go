package model

import (
	"encoding/json"
	"fmt"
)

// =====================================================
// SECTIONS
// =====================================================

// SectionName is one of the six top-level keys of a Document.
type SectionName string

const (
	SectionHeader   SectionName = "header"
	SectionHero     SectionName = "hero"
	SectionServices SectionName = "services"
	SectionAbout    SectionName = "about"
	SectionFooter   SectionName = "footer"
	SectionContact  SectionName = "contact"
)

// DocumentKey is the logical key the whole document is stored under.
const DocumentKey = "main"

// AllSections returns the section names in document order.
func AllSections() []SectionName {
	return []SectionName{
		SectionHeader,
		SectionHero,
		SectionServices,
		SectionAbout,
		SectionFooter,
		SectionContact,
	}
}

// IsSection reports whether name is a known section.
func IsSection(name string) bool {
	for _, s := range AllSections() {
		if string(s) == name {
			return true
		}
	}
	return false
}

// =====================================================
// DOCUMENT
// =====================================================

// Document is the single content document behind the site.
// A section absent from stored JSON decodes to its zero value.
type Document struct {
	Header   Header   `json:"header"`
	Hero     Hero     `json:"hero"`
	Services Services `json:"services"`
	About    About    `json:"about"`
	Footer   Footer   `json:"footer"`
	Contact  Contact  `json:"contact"`
}

type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

type CTAButton struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

type Header struct {
	BrandName string    `json:"brandName"`
	Logo      string    `json:"logo"`
	NavItems  []NavItem `json:"navItems"`
	CTAButton CTAButton `json:"ctaButton"`
}

type Hero struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTAText         string `json:"ctaText"`
	CTAHref         string `json:"ctaHref"`
	BackgroundImage string `json:"backgroundImage"`
}

type ServiceItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
	Duration    string   `json:"duration,omitempty"`
	Price       string   `json:"price,omitempty"`
}

type Services struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []ServiceItem `json:"items"`
}

// FindItem returns the service item with the given id.
func (s Services) FindItem(id string) (ServiceItem, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return ServiceItem{}, false
}

type FeatureCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type About struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Features []FeatureCard `json:"features"`
}

type FooterLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type ContactBlock struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type SocialLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

type Footer struct {
	BrandName   string       `json:"brandName"`
	Logo        string       `json:"logo"`
	Description string       `json:"description"`
	Services    []FooterLink `json:"services"`
	QuickLinks  []FooterLink `json:"quickLinks"`
	Contact     ContactBlock `json:"contact"`
	SocialMedia []SocialLink `json:"socialMedia"`
	Copyright   string       `json:"copyright"`
	LegalLinks  []FooterLink `json:"legalLinks"`
}

// Contact holds the booking address and the notification templates.
// Templates may contain {name} {email} {phone} {service} {message} {date}.
type Contact struct {
	Title                string `json:"title"`
	Subtitle             string `json:"subtitle"`
	Email                string `json:"email"`
	EmailSubject         string `json:"emailSubject,omitempty"`
	EmailBody            string `json:"emailBody,omitempty"`
	CustomerEmailSubject string `json:"customerEmailSubject,omitempty"`
	CustomerEmailBody    string `json:"customerEmailBody,omitempty"`
}

// =====================================================
// SECTION ACCESS
// =====================================================

// Section returns the value of the named section, or false for an unknown name.
func (d *Document) Section(name SectionName) (interface{}, bool) {
	switch name {
	case SectionHeader:
		return d.Header, true
	case SectionHero:
		return d.Hero, true
	case SectionServices:
		return d.Services, true
	case SectionAbout:
		return d.About, true
	case SectionFooter:
		return d.Footer, true
	case SectionContact:
		return d.Contact, true
	}
	return nil, false
}

// ReplaceSection decodes raw into a fresh value of the section's type and
// swaps it in whole. Fields absent from raw end up zero; nothing is merged
// with the previous value.
func (d *Document) ReplaceSection(name SectionName, raw json.RawMessage) error {
	switch name {
	case SectionHeader:
		var v Header
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		d.Header = v
	case SectionHero:
		var v Hero
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		d.Hero = v
	case SectionServices:
		var v Services
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		d.Services = v
	case SectionAbout:
		var v About
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		d.About = v
	case SectionFooter:
		var v Footer
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		d.Footer = v
	case SectionContact:
		var v Contact
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		d.Contact = v
	default:
		return fmt.Errorf("unknown section %q", name)
	}
	return nil
}

// Clone returns a deep copy through a JSON round trip.
func (d *Document) Clone() (*Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

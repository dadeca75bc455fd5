package model

// DefaultDocument returns the seed content written by `cmsctl seed` and used
// by the public pages when the store cannot produce a document.
func DefaultDocument() *Document {
	return &Document{
		Header: Header{
			BrandName: "Dr Baig's Clinic",
			Logo:      "/logo.png",
			NavItems: []NavItem{
				{ID: "nav-home", Label: "Home", Href: "/", Icon: "home"},
				{ID: "nav-services", Label: "Services", Href: "/#services", Icon: "sparkles"},
				{ID: "nav-about", Label: "About", Href: "/#about", Icon: "info"},
				{ID: "nav-contact", Label: "Contact", Href: "/#contact", Icon: "phone"},
			},
			CTAButton: CTAButton{Text: "Book Appointment", Href: "/#contact"},
		},
		Hero: Hero{
			Title:           "Expert Hair & Skin Care",
			Subtitle:        "Personalised treatments delivered by experienced specialists.",
			CTAText:         "Book a Consultation",
			CTAHref:         "/#contact",
			BackgroundImage: "https://images.unsplash.com/photo-1576091160399-112ba8d25d1d?w=1600",
		},
		Services: Services{
			Title:    "Our Services",
			Subtitle: "Comprehensive treatments for hair, skin and wellness.",
			Items: []ServiceItem{
				{
					ID:          "hair-restoration",
					Title:       "Hair Restoration",
					Description: "Comprehensive hair restoration treatments designed to help you regain natural, healthy hair.",
					Image:       "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=1200",
					Features: []string{
						"PRP (Platelet-Rich Plasma) Therapy",
						"Hair Scalp Analysis & Diagnosis",
						"Customized Treatment Plans",
					},
					Duration: "60-90 minutes",
					Price:    "Starting from $299",
				},
				{
					ID:          "hair-transplantation",
					Title:       "Hair Transplantation",
					Description: "FUE and FUT hair transplantation for permanent, natural-looking results.",
					Image:       "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=1200",
					Features: []string{
						"FUE Hair Transplantation",
						"Natural Hairline Design",
						"Post-Transplant Care",
					},
					Duration: "4-8 hours",
					Price:    "Starting from $2,999",
				},
				{
					ID:          "skin-care",
					Title:       "Professional Skin Care",
					Description: "Expert skincare treatments tailored to your skin type.",
					Image:       "https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=1200",
					Features: []string{
						"Customized Facial Treatments",
						"Deep Cleansing",
						"Skin Brightening",
					},
					Duration: "60-90 minutes",
					Price:    "Starting from $179",
				},
				{
					ID:          "hijama",
					Title:       "Hijama Therapy",
					Description: "Traditional cupping therapy for detoxification, pain relief and overall wellness.",
					Image:       "https://images.unsplash.com/photo-1519823551278-64ac92734fb1?w=1200",
					Features: []string{
						"Wet & Dry Cupping",
						"Sterile Single-Use Equipment",
					},
					Duration: "45-60 minutes",
				},
			},
		},
		About: About{
			Title:    "Why Choose Us",
			Subtitle: "Care built on experience and trust.",
			Features: []FeatureCard{
				{ID: "about-experts", Title: "Experienced Specialists", Description: "Qualified doctors with years of practice.", Icon: "user-md"},
				{ID: "about-technology", Title: "Modern Technology", Description: "Up-to-date equipment and techniques.", Icon: "cpu"},
				{ID: "about-care", Title: "Personal Care", Description: "Treatment plans built around you.", Icon: "heart"},
			},
		},
		Footer: Footer{
			BrandName:   "Dr Baig's Clinic",
			Logo:        "/logo.png",
			Description: "Hair, skin and wellness treatments.",
			Services: []FooterLink{
				{Name: "Hair Restoration", Href: "/services/hair-restoration"},
				{Name: "Skin Care", Href: "/services/skin-care"},
				{Name: "Hijama", Href: "/services/hijama"},
			},
			QuickLinks: []FooterLink{
				{Name: "Home", Href: "/"},
				{Name: "About", Href: "/#about"},
				{Name: "Contact", Href: "/#contact"},
			},
			Contact: ContactBlock{
				Address: "123 Clinic Street",
				Phone:   "+1 555 0100",
				Email:   "info@example.com",
			},
			SocialMedia: []SocialLink{
				{ID: "social-facebook", Name: "Facebook", URL: "https://facebook.com", Icon: "facebook"},
				{ID: "social-instagram", Name: "Instagram", URL: "https://instagram.com", Icon: "instagram"},
			},
			Copyright: "© Dr Baig's Clinic. All rights reserved.",
			LegalLinks: []FooterLink{
				{Name: "Privacy Policy", Href: "/privacy"},
				{Name: "Terms of Service", Href: "/terms"},
			},
		},
		Contact: Contact{
			Title:    "Book an Appointment",
			Subtitle: "Tell us how we can help and we will get back to you.",
			Email:    "bookings@example.com",
		},
	}
}

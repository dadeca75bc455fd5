package editor

import "clinic-cms/internal/domains/content/model"

// New list entries get their durable id when created, never from position.

func NewNavItem(label, href, icon string) model.NavItem {
	return model.NavItem{ID: model.NewID(), Label: label, Href: href, Icon: icon}
}

func NewServiceItem(title, description string) model.ServiceItem {
	return model.ServiceItem{ID: model.NewID(), Title: title, Description: description, Features: []string{}}
}

func NewFeatureCard(title, description, icon string) model.FeatureCard {
	return model.FeatureCard{ID: model.NewID(), Title: title, Description: description, Icon: icon}
}

func NewSocialLink(name, url, icon string) model.SocialLink {
	return model.SocialLink{ID: model.NewID(), Name: name, URL: url, Icon: icon}
}

func NavItemID(item model.NavItem) string         { return item.ID }
func ServiceItemID(item model.ServiceItem) string { return item.ID }
func FeatureCardID(card model.FeatureCard) string { return card.ID }
func SocialLinkID(link model.SocialLink) string   { return link.ID }

// LockHeaderLinks restores the stored hrefs of existing navigation entries
// and the CTA button. Used when link editing is disabled; entries that did
// not exist before keep what the draft holds.
func LockHeaderLinks(draft, stored model.Header) model.Header {
	hrefs := make(map[string]string, len(stored.NavItems))
	for _, item := range stored.NavItems {
		hrefs[item.ID] = item.Href
	}

	out := draft
	out.NavItems = make([]model.NavItem, len(draft.NavItems))
	for i, item := range draft.NavItems {
		if href, ok := hrefs[item.ID]; ok && item.ID != "" {
			item.Href = href
		}
		out.NavItems[i] = item
	}
	out.CTAButton.Href = stored.CTAButton.Href
	return out
}

// LockHeroLinks restores the stored hero CTA href.
func LockHeroLinks(draft, stored model.Hero) model.Hero {
	draft.CTAHref = stored.CTAHref
	return draft
}

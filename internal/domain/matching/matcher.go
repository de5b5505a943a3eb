// Package matching derives relationship tags and a similarity score by
// comparing an imported contact against the owner's profile.
package matching

import (
	"fmt"
	"strings"

	"github.com/khoahotran/network-os/internal/domain/contact"
	"github.com/khoahotran/network-os/internal/domain/profile"
)

type Result struct {
	Tags            []string `json:"tags"`
	SimilarityScore int      `json:"similarity_score"`
}

const (
	roleScore           = 30
	currentCompanyScore = 50
	formerCompanyScore  = 30
	industryScore       = 20
	highValueThreshold  = 70

	TagHighValue = "High-Value Connection"
)

// Checked in order; only the first keyword present in both roles produces a tag.
var roleKeywords = []string{
	"engineer", "manager", "director", "vp", "ceo", "cto", "cfo",
	"founder", "product", "design", "sales", "marketing", "analyst",
}

// Match is a pure comparison of a candidate contact against the owner's
// profile. The returned tags are deduplicated and the score is capped at 100.
func Match(p *profile.UserProfile, c *contact.ParsedContact) Result {
	var tags []string
	score := 0

	if roleTag, ok := similarRoleTag(p, c); ok {
		tags = append(tags, roleTag)
		score += roleScore
	}

	if companyTag, current, ok := sharedCompanyTag(p, c); ok {
		tags = append(tags, companyTag)
		if current {
			score += currentCompanyScore
		} else {
			score += formerCompanyScore
		}
	}

	if industryTag, ok := industryPeerTag(p, c); ok {
		tags = append(tags, industryTag)
		score += industryScore
	}

	if score > 100 {
		score = 100
	}
	if score >= highValueThreshold {
		tags = append(tags, TagHighValue)
	}

	return Result{
		Tags:            contact.MergeTags(tags, nil),
		SimilarityScore: score,
	}
}

func similarRoleTag(p *profile.UserProfile, c *contact.ParsedContact) (string, bool) {
	if p.CurrentRole == "" || c.Role == "" || c.Role == "Unknown" {
		return "", false
	}

	userRole := strings.ToLower(p.CurrentRole)
	contactRole := strings.ToLower(c.Role)

	if userRole == contactRole {
		return fmt.Sprintf("Similar Role - %s", c.Role), true
	}

	for _, keyword := range roleKeywords {
		if strings.Contains(userRole, keyword) && strings.Contains(contactRole, keyword) {
			return fmt.Sprintf("Similar Role - %s", capitalize(keyword)), true
		}
	}
	return "", false
}

// sharedCompanyTag reports a colleague tag; current employment short-circuits
// the work-history scan.
func sharedCompanyTag(p *profile.UserProfile, c *contact.ParsedContact) (tag string, current bool, ok bool) {
	if c.Company == "" || c.Company == "Unknown" {
		return "", false, false
	}

	contactCompany := strings.ToLower(c.Company)

	if p.CurrentCompany != "" && strings.ToLower(p.CurrentCompany) == contactCompany {
		return fmt.Sprintf("Current Colleague - %s", c.Company), true, true
	}

	for _, pos := range p.WorkHistory {
		if strings.ToLower(pos.Company) == contactCompany {
			return fmt.Sprintf("Former Colleague - %s", c.Company), false, true
		}
	}
	return "", false, false
}

func industryPeerTag(p *profile.UserProfile, c *contact.ParsedContact) (string, bool) {
	if len(p.Industries) == 0 {
		return "", false
	}

	// Crude heuristic: the industry name showing up in company or role text.
	contactInfo := strings.ToLower(c.Company + " " + c.Role)
	for _, industry := range p.Industries {
		if industry == "" {
			continue
		}
		if strings.Contains(contactInfo, strings.ToLower(industry)) {
			return fmt.Sprintf("Industry Peer - %s", industry), true
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

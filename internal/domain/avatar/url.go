package avatar

import (
	"fmt"
	"strings"
)

// ServiceHost is appended to the partner subdomain.
const ServiceHost = "readyplayer.me"

// Query tokens understood by the avatar creator.
const (
	paramToken          = "token"
	paramFrameAPI       = "frameApi"
	paramClearCache     = "clearCache"
	paramQuickStart     = "quickStart"
	paramFullBody       = "bodyType=fullbody"
	paramHalfBody       = "bodyType=halfbody"
	paramSelectBodyType = "selectBodyType"
	paramGenderMale     = "gender=male"
	paramGenderFemale   = "gender=female"
)

// Config is everything needed to build the avatar creator URL.
type Config struct {
	PartnerDomain string
	Language      Language
	LoginToken    string
	ClearCache    bool
	QuickStart    bool
	BodyType      BodyType
	Gender        Gender
}

// URL builds the avatar creator address. A non-empty loginToken takes
// precedence over c.LoginToken.
func (c Config) URL(loginToken string) string {
	if loginToken == "" {
		loginToken = c.LoginToken
	}

	params := make([]string, 0, 6)
	if loginToken != "" {
		params = append(params, paramToken+"="+loginToken)
	}
	params = append(params, paramFrameAPI)
	if c.ClearCache {
		params = append(params, paramClearCache)
	}
	if c.QuickStart {
		params = append(params, paramQuickStart)
	}
	params = c.appendBodyType(params)
	params = c.appendGender(params)

	var query string
	if len(params) > 0 {
		query = "?" + strings.Join(params, "&")
	}

	var lang string
	if code := c.Language.Code(); code != "" {
		lang = "/" + code
	}

	return fmt.Sprintf("https://%s.%s%s/avatar%s", c.PartnerDomain, ServiceHost, lang, query)
}

func (c Config) appendBodyType(params []string) []string {
	switch c.BodyType {
	case BodyTypeFullBody:
		return append(params, paramFullBody)
	case BodyTypeHalfBody:
		return append(params, paramHalfBody)
	case BodyTypeSelect:
		return append(params, paramSelectBodyType)
	default:
		return params
	}
}

func (c Config) appendGender(params []string) []string {
	switch c.Gender {
	case GenderMale:
		return append(params, paramGenderMale)
	case GenderFemale:
		return append(params, paramGenderFemale)
	default:
		return params
	}
}

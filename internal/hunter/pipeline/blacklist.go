package pipeline

import "strings"

// profilePathMarker identifies professional-network profile links among
// search results.
const profilePathMarker = "linkedin.com/in/"

// junkPathSegments disqualify a result link from being a person profile:
// job postings, company pages, articles, learning content, directories.
var junkPathSegments = []string{
	"/jobs/",
	"/company/",
	"/pulse/",
	"/dir/",
	"/learning/",
	"/posts/",
}

// brandSuffixes are trailing site-brand decorations search engines append to
// profile titles. They are stripped before parsing.
var brandSuffixes = []string{
	" - LinkedIn",
	" | LinkedIn Brasil",
	" | LinkedIn",
}

// junkTitleTerms mark result titles that are navigation or login noise rather
// than a person's profile.
var junkTitleTerms = []string{
	"perfil",
	"login",
	"cadastre-se",
	"vagas",
	"pessoas também viram",
	"outros perfis",
	"traduzir esta página",
	"sign in",
	"sign up",
}

// emailJunkTerms exclude crawled email matches that are clearly automated or
// placeholder mailboxes.
var emailJunkTerms = []string{
	"noreply",
	"no-reply",
	"no_reply",
	"mailer-daemon",
	"example",
	"sentry",
}

// assetSuffixes exclude email-shaped matches that are actually asset file
// references (e.g. logo@2x.png embedded in markup).
var assetSuffixes = []string{
	".png",
	".jpg",
	".jpeg",
	".gif",
	".svg",
	".webp",
	".css",
	".js",
	".ico",
	".woff",
	".woff2",
}

// contactLinkKeywords select internal pages worth crawling beyond the home
// page, with localized variants.
var contactLinkKeywords = []string{
	"contact",
	"contato",
	"fale-conosco",
	"faleconosco",
	"about",
	"sobre",
	"quem-somos",
	"equipe",
	"team",
}

// titleBoilerplate are page-title tokens that carry no company name.
var titleBoilerplate = []string{
	"home",
	"início",
	"inicio",
	"site oficial",
	"official site",
	"página inicial",
	"bem-vindo",
	"bem vindo",
	"welcome",
}

// genericPrefixes are departmental mailboxes guessed for every target domain.
var genericPrefixes = []string{
	"contato",
	"comercial",
	"financeiro",
	"rh",
	"vendas",
	"adm",
	"suporte",
	"diretoria",
}

// containsAny reports whether s contains any of the terms, case-insensitively.
func containsAny(s string, terms []string) bool {
	lower := strings.ToLower(s)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	return false
}

// hasAssetSuffix reports whether the match ends in a known asset-file extension.
func hasAssetSuffix(s string) bool {
	lower := strings.ToLower(s)
	for _, suffix := range assetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}

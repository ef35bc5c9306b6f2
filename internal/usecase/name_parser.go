package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/seedcatalog/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	organicTokenRegex   = regexp.MustCompile(`(?i)\b(organic|biologique)\b`)
	trailingSeedsRegex  = regexp.MustCompile(`(?i)\s+(seeds|seed)$`)
	trailingCommaRegex  = regexp.MustCompile(`,\s*$`)
	quotedCultivarRegex = regexp.MustCompile(`'([^']+)'`)
	mixTokenRegex       = regexp.MustCompile(`(?i)\bmix\b`)
	whitespaceRegex     = regexp.MustCompile(`\s+`)
)

// commonNameMapping maps lowercase synonyms and informal spellings to the
// canonical common name. Consulted only when the caller-supplied registry has
// no match, so registries can override these defaults.
var commonNameMapping = map[string]string{
	"swiss chard":      "Swiss Chard",
	"chard":            "Swiss Chard",
	"kale":             "Kale",
	"radish":           "Radish",
	"winter radish":    "Radish",
	"broccoli":         "Broccoli",
	"sunflower":        "Sunflower",
	"pea":              "Pea",
	"peas":             "Pea",
	"forage pea":       "Pea",
	"green forage pea": "Pea",
	"green pea":        "Pea",
	"alfalfa":          "Alfalfa",
	"mustard":          "Mustard",
	"arugula":          "Arugula",
	"lettuce":          "Lettuce",
	"beet":             "Beet",
	"beets":            "Beet",
	"spinach":          "Spinach",
	"basil":            "Basil",
	"amaranth":         "Amaranth",
	"buckwheat":        "Buckwheat",
	"chia":             "Chia",
	"cilantro":         "Cilantro",
	"coriander":        "Coriander",
	"cress":            "Cress",
	"peppergrass":      "Cress",
	"garden cress":     "Cress",
	"mung bean":        "Mung Bean",
	"bean":             "Bean",
	"wheatgrass":       "Wheatgrass",
	"clover":           "Clover",
	"cabbage":          "Cabbage",
	"collard":          "Collard",
	"corn":             "Corn",
	"barley":           "Barley",
	"oat":              "Oat",
	"dill":             "Dill",
	"fava bean":        "Fava Bean",
	"fennel":           "Fennel",
	"fenugreek":        "Fenugreek",
	"flax":             "Flax",
	"kohlrabi":         "Kohlrabi",
	"leek":             "Leek",
	"lentil":           "Lentil",
	"mizuna":           "Mizuna",
	"komatsuna":        "Komatsuna",
	"nasturtium":       "Nasturtium",
	"onion":            "Onion",
	"onions":           "Onion",
	"parsley":          "Parsley",
	"quinoa":           "Quinoa",
	"rutabaga":         "Rutabaga",
	"rye":              "Rye",
	"sorrel":           "Sorrel",
	"thyme":            "Thyme",
	"turnip":           "Turnip",
	"watercress":       "Watercress",
	"wheat":            "Wheat",
	"chervil":          "Chervil",
}

// mappingKeysByLength holds the mapping keys sorted longest-first so
// multi-word synonyms win over their substrings.
var mappingKeysByLength = sortedMappingKeys()

func sortedMappingKeys() []string {
	keys := make([]string, 0, len(commonNameMapping))
	for k := range commonNameMapping {
		keys = append(keys, k)
	}
	// Insertion sort by descending length, then lexicographic for
	// deterministic iteration over the map.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0; j-- {
			a, b := keys[j-1], keys[j]
			if len(b) > len(a) || (len(b) == len(a) && b < a) {
				keys[j-1], keys[j] = b, a
			} else {
				break
			}
		}
	}
	return keys
}

// cultivarIndicators are brand or lot prefixes that mark the other side of a
// delimiter as the cultivar rather than the common name.
var cultivarIndicators = []string{"greencrops", "4010"}

// BotanicalNameParser resolves a free-text product title into common name,
// cultivar and residual descriptors. It works through an ordered cascade of
// heuristics, each returning immediately on success, and degrades to a
// best-effort guess instead of failing. For a given (title, registry) pair
// the result is deterministic.
type BotanicalNameParser struct {
	registry           *NameRegistry
	enableDebugLogging bool
}

// NewBotanicalNameParser creates a parser over an immutable registry of known
// common names.
func NewBotanicalNameParser(registry *NameRegistry, enableDebugLogging bool) *BotanicalNameParser {
	if registry == nil {
		registry = NewNameRegistry(nil)
	}
	return &BotanicalNameParser{
		registry:           registry,
		enableDebugLogging: enableDebugLogging,
	}
}

// Parse resolves a product title. Unresolved components come back as the
// "N/A" sentinel, never as empty strings.
func (p *BotanicalNameParser) Parse(title string) domain.ParsedName {
	if strings.TrimSpace(title) == "" {
		return cleanParsedName(domain.ParsedName{})
	}

	cleaned := preCleanTitle(title)
	if cleaned == "" {
		return cleanParsedName(domain.ParsedName{CommonName: title})
	}

	strategies := []func(string) (domain.ParsedName, bool){
		p.matchSpecialCase,
		p.matchQuotedCultivar,
		p.matchDelimited,
		p.matchRegistry,
		p.matchMapping,
		p.matchMix,
	}
	for _, strategy := range strategies {
		if result, ok := strategy(cleaned); ok {
			return cleanParsedName(result)
		}
	}

	return cleanParsedName(p.firstWordFallback(cleaned))
}

// preCleanTitle strips organic markers and trailing "seed(s)", collapses
// whitespace and trims trailing commas.
func preCleanTitle(title string) string {
	cleaned := organicTokenRegex.ReplaceAllString(title, "")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = trailingSeedsRegex.ReplaceAllString(cleaned, "")
	cleaned = trailingCommaRegex.ReplaceAllString(cleaned, "")
	return strings.Trim(strings.TrimSpace(cleaned), "-– ")
}

// matchSpecialCase resolves a small table of known problematic titles that
// the generic rules misparse: numeric cultivar codes like "4010" would
// otherwise be taken as a leading cultivar-less word, and brand prefixes like
// "Greencrops" look like common names.
func (p *BotanicalNameParser) matchSpecialCase(cleaned string) (domain.ParsedName, bool) {
	lower := strings.ToLower(cleaned)

	switch {
	case strings.Contains(lower, "usda") && strings.Contains(lower, "sunflower") && strings.Contains(lower, "black oil"):
		return domain.ParsedName{CommonName: "Sunflower", CultivarName: "USDA Certified Black Oil"}, true
	case strings.Contains(lower, "greencrops") && strings.Contains(lower, "pea"):
		return domain.ParsedName{CommonName: "Pea", CultivarName: "Greencrops"}, true
	case strings.Contains(lower, "4010") && strings.Contains(lower, "pea"):
		return domain.ParsedName{CommonName: "Pea", CultivarName: "4010 Green Forage"}, true
	case strings.Contains(lower, "mung bean") && strings.Contains(lower, "sprouting"):
		return domain.ParsedName{CommonName: "Mung Bean", CultivarName: "Sprouting"}, true
	case strings.Contains(lower, "sunflower") && strings.Contains(lower, "black oil"):
		return domain.ParsedName{CommonName: "Sunflower", CultivarName: "Black Oil"}, true
	}
	return domain.ParsedName{}, false
}

// matchQuotedCultivar handles the conventional single-quoted cultivar
// notation: the quoted substring is always the cultivar, and the common name
// is resolved from whatever text remains.
func (p *BotanicalNameParser) matchQuotedCultivar(cleaned string) (domain.ParsedName, bool) {
	m := quotedCultivarRegex.FindStringSubmatch(cleaned)
	if m == nil {
		return domain.ParsedName{}, false
	}
	cultivar := m[1]
	remaining := strings.TrimSpace(strings.Replace(cleaned, "'"+cultivar+"'", "", 1))

	commonName := p.resolveCommonName(remaining)
	descriptors := ""
	if commonName != "" {
		descriptors = cleanComponent(p.registry.RemoveFrom(remaining, commonName))
		if descriptors == domain.NotAvailable {
			descriptors = ""
		}
	}

	return domain.ParsedName{
		CommonName:            commonName,
		CultivarName:          cultivar,
		AdditionalDescriptors: descriptors,
	}, true
}

// matchDelimited splits on comma, then dash, and decides which side carries
// the common name.
func (p *BotanicalNameParser) matchDelimited(cleaned string) (domain.ParsedName, bool) {
	for _, sep := range []string{",", "-"} {
		if !strings.Contains(cleaned, sep) {
			continue
		}
		parts := strings.SplitN(cleaned, sep, 2)
		left := strings.TrimSpace(trailingCommaRegex.ReplaceAllString(strings.TrimSpace(parts[0]), ""))
		right := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[1]), ","))

		if p.isCommonName(left) {
			return p.splitRightSide(p.standardizeCommonName(left), right), true
		}

		// "Greens, ..." is a category prefix: the real common name is
		// embedded in the right part.
		if strings.EqualFold(left, "greens") {
			return p.resolveGreensTail(right), true
		}

		// A cultivar indicator on the left means the common name, if any,
		// lives on the right ("Greencrops, 4010 Green Forage Pea").
		if containsIndicator(left) {
			if name, remainder, ok := p.findNameIn(right); ok {
				descriptors := cleanComponent(remainder)
				if descriptors == domain.NotAvailable {
					descriptors = ""
				}
				return domain.ParsedName{
					CommonName:            name,
					CultivarName:          left,
					AdditionalDescriptors: descriptors,
				}, true
			}
		}

		// Reversed order: "Red Russian, Kale".
		if p.isCommonName(right) {
			if p.enableDebugLogging {
				log.Printf("[NAMEPARSE] common name on right of %q in %q", sep, cleaned)
			}
			name := p.standardizeCommonName(right)
			if looksLikeCultivar(left) {
				return domain.ParsedName{CommonName: name, CultivarName: left}, true
			}
			return domain.ParsedName{CommonName: name, AdditionalDescriptors: left}, true
		}
	}
	return domain.ParsedName{}, false
}

// splitRightSide classifies the text after the delimiter as cultivar or
// descriptors, splitting once more when it carries its own delimiter.
func (p *BotanicalNameParser) splitRightSide(commonName, right string) domain.ParsedName {
	if right == "" {
		return domain.ParsedName{CommonName: commonName}
	}
	if !looksLikeCultivar(right) {
		return domain.ParsedName{CommonName: commonName, AdditionalDescriptors: right}
	}
	for _, sep := range []string{",", "-"} {
		if strings.Contains(right, sep) {
			parts := strings.SplitN(right, sep, 2)
			return domain.ParsedName{
				CommonName:            commonName,
				CultivarName:          strings.TrimSpace(parts[0]),
				AdditionalDescriptors: strings.TrimSpace(parts[1]),
			}
		}
	}
	return domain.ParsedName{CommonName: commonName, CultivarName: right}
}

// resolveGreensTail extracts the embedded common name from titles like
// "Greens, Red Garnet Amaranth".
func (p *BotanicalNameParser) resolveGreensTail(right string) domain.ParsedName {
	if name, remainder, ok := p.findNameIn(right); ok {
		cultivar := cleanComponent(remainder)
		if cultivar == domain.NotAvailable {
			cultivar = ""
		}
		return domain.ParsedName{CommonName: name, CultivarName: cultivar}
	}
	// No known name in the tail; treat the whole tail as the common name.
	return domain.ParsedName{CommonName: titleCase(right)}
}

// matchRegistry scans the whole cleaned title for the longest known registry
// name and classifies the remainder.
func (p *BotanicalNameParser) matchRegistry(cleaned string) (domain.ParsedName, bool) {
	name, ok := p.registry.FindIn(cleaned)
	if !ok {
		return domain.ParsedName{}, false
	}
	remainder := cleanComponent(p.registry.RemoveFrom(cleaned, name))
	return classifyRemainder(name, remainder), true
}

// matchMapping is the registry scan applied to the built-in synonym table,
// consulted only when the registry itself had no match.
func (p *BotanicalNameParser) matchMapping(cleaned string) (domain.ParsedName, bool) {
	name, remainder, ok := p.findMappingIn(cleaned)
	if !ok {
		return domain.ParsedName{}, false
	}
	return classifyRemainder(name, cleanComponent(remainder)), true
}

// matchMix treats any title carrying the word "mix" as a blend whose whole
// cleaned title is the common name.
func (p *BotanicalNameParser) matchMix(cleaned string) (domain.ParsedName, bool) {
	if !mixTokenRegex.MatchString(cleaned) {
		return domain.ParsedName{}, false
	}
	return domain.ParsedName{CommonName: cleaned}, true
}

// firstWordFallback is the last resort: a leading capitalized word becomes
// the common name and the rest the cultivar. This is a deliberate
// approximation carried over from observed behavior; when nothing is
// capitalized the whole title is returned as the common name.
func (p *BotanicalNameParser) firstWordFallback(cleaned string) domain.ParsedName {
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return domain.ParsedName{CommonName: cleaned}
	}
	first := words[0]
	if isCapitalized(first) {
		if p.enableDebugLogging {
			log.Printf("[NAMEPARSE] first-word fallback for %q", cleaned)
		}
		return domain.ParsedName{
			CommonName:   first,
			CultivarName: strings.Join(words[1:], " "),
		}
	}
	return domain.ParsedName{CommonName: cleaned}
}

// resolveCommonName finds the best common-name candidate in text: registry
// first, then the synonym mapping, then a short leading capitalized word,
// then the text itself.
func (p *BotanicalNameParser) resolveCommonName(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if name, ok := p.registry.FindIn(text); ok {
		return name
	}
	if name, _, ok := p.findMappingIn(text); ok {
		return name
	}
	words := strings.Fields(text)
	if len(words) > 0 && len(words[0]) > 1 && len(words[0]) < 15 && isCapitalized(words[0]) {
		return words[0]
	}
	return text
}

// findNameIn locates the longest known name (registry, then mapping) inside
// text and returns it with the leftover text.
func (p *BotanicalNameParser) findNameIn(text string) (name, remainder string, ok bool) {
	if found, ok := p.registry.FindIn(text); ok {
		return found, p.registry.RemoveFrom(text, found), true
	}
	return p.findMappingIn(text)
}

// findMappingIn locates the longest synonym-table key inside text.
func (p *BotanicalNameParser) findMappingIn(text string) (name, remainder string, ok bool) {
	for _, key := range mappingKeysByLength {
		pattern := wholeWordPattern(key)
		if pattern.MatchString(text) {
			return commonNameMapping[key], pattern.ReplaceAllString(text, ""), true
		}
	}
	return "", "", false
}

// isCommonName reports whether text as a whole is a known common name.
func (p *BotanicalNameParser) isCommonName(text string) bool {
	if text == "" {
		return false
	}
	if p.registry.Contains(text) {
		return true
	}
	_, ok := commonNameMapping[strings.ToLower(text)]
	return ok
}

// standardizeCommonName canonicalizes a matched common name: mapping value if
// present, registry spelling if known, title case otherwise.
func (p *BotanicalNameParser) standardizeCommonName(text string) string {
	cleaned := cleanComponent(text)
	if cleaned == domain.NotAvailable {
		return cleaned
	}
	if mapped, ok := commonNameMapping[strings.ToLower(cleaned)]; ok {
		return mapped
	}
	if name, ok := p.registry.Canonical(cleaned); ok {
		return name
	}
	return titleCase(cleaned)
}

// classifyRemainder decides whether leftover text after a name match is a
// cultivar or descriptors.
func classifyRemainder(commonName, remainder string) domain.ParsedName {
	if remainder == domain.NotAvailable || remainder == "" {
		return domain.ParsedName{CommonName: commonName}
	}
	if looksLikeCultivar(remainder) {
		return domain.ParsedName{CommonName: commonName, CultivarName: remainder}
	}
	return domain.ParsedName{CommonName: commonName, AdditionalDescriptors: remainder}
}

// looksLikeCultivar reports whether text is plausibly a cultivar name: at
// most four words, at least one of them capitalized.
func looksLikeCultivar(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if len(w) > 1 && isCapitalized(w) {
			return true
		}
	}
	return false
}

func containsIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, ind := range cultivarIndicators {
		if wholeWordPattern(ind).MatchString(lower) {
			return true
		}
	}
	return false
}

func isCapitalized(word string) bool {
	return word != "" && word[0] >= 'A' && word[0] <= 'Z'
}

// cleanComponent strips leading/trailing punctuation, collapses whitespace
// and coerces empty results to the sentinel.
func cleanComponent(text string) string {
	cleaned := strings.Trim(text, ",-.;: \t")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return domain.NotAvailable
	}
	return cleaned
}

// cleanParsedName applies the final cleanup to every component so the
// three-field sentinel invariant holds regardless of which cascade stage
// produced the result.
func cleanParsedName(name domain.ParsedName) domain.ParsedName {
	return domain.ParsedName{
		CommonName:            cleanComponent(name.CommonName),
		CultivarName:          cleanComponent(name.CultivarName),
		AdditionalDescriptors: cleanComponent(name.AdditionalDescriptors),
	}
}

// titleCase capitalizes the first letter of each word.
func titleCase(text string) string {
	words := strings.Fields(strings.ToLower(text))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

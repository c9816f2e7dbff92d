package techstack

// reviewGuidelines maps a technology to the focus areas a reviewer should
// weigh when it is present. This is a lookup table, not computed analysis.
var reviewGuidelines = map[string][]string{
	"go": {
		"check error returns are handled, not discarded",
		"watch for goroutine leaks and missing context propagation",
	},
	"python": {
		"check for mutable default arguments",
		"verify exception handling is not overly broad",
	},
	"javascript": {
		"watch for unhandled promise rejections",
		"check for == vs === comparisons",
	},
	"typescript": {
		"flag any/unknown escapes from the type system",
	},
	"java": {
		"check resource handling uses try-with-resources",
	},
	"react": {
		"check hook dependency arrays for stale closures",
		"flag dangerouslySetInnerHTML and unescaped user content",
	},
	"django": {
		"verify ORM queries avoid N+1 patterns",
		"check CSRF protections on state-changing views",
	},
	"express": {
		"verify input validation on route handlers",
		"check middleware error propagation",
	},
	"spring": {
		"check transactional boundaries on service methods",
	},
	"rails": {
		"watch for mass-assignment via permitted params",
	},
	"docker": {
		"check images pin base versions and drop root",
	},
	"terraform": {
		"review state handling and secret variables",
	},
	"github-actions": {
		"pin third-party actions to a commit SHA",
		"check workflow permissions are least-privilege",
	},
	"jenkins": {
		"check credentials are bound, not inlined",
	},
	"aws": {
		"review IAM policies for wildcard grants",
	},
	"jest": {
		"watch for tests relying on shared mutable fixtures",
	},
	"pytest": {
		"check fixtures for hidden ordering dependencies",
	},
}

// ReviewContext maps every detected technology that has guidelines to its
// review focus areas. Technologies without an entry are omitted.
func ReviewContext(st *Stack) map[string][]string {
	out := make(map[string][]string)
	for _, tech := range st.All() {
		if guidelines, ok := reviewGuidelines[tech]; ok {
			out[tech] = append([]string{}, guidelines...)
		}
	}
	return out
}

// ReviewFocusAreas flattens ReviewContext into a sorted, deduplicated list.
func ReviewFocusAreas(st *Stack) []string {
	seen := make(set)
	for _, guidelines := range ReviewContext(st) {
		for _, g := range guidelines {
			seen.add(g)
		}
	}
	return seen.sorted()
}

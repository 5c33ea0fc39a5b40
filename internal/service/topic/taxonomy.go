package topic

import "slices"

// Category is a fixed CS topic bucket used for response selection.
type Category string

const (
	CatPython        Category = "python"
	CatJavaScript    Category = "javascript"
	CatJava          Category = "java"
	CatAlgorithm     Category = "algorithm"
	CatDataStructure Category = "data structure"
	CatDatabase      Category = "database"
	CatWeb           Category = "web"
	CatOOP           Category = "oop"
	CatNetwork       Category = "network"
	CatAI            Category = "ai"
	CatSecurity      Category = "security"
	CatGit           Category = "git"
	CatOS            Category = "os"
)

// Order is the priority in which categories are tested. The first category
// with a trigger hit wins, so a phrase shared by two categories always
// resolves to the one listed earlier here.
var Order = []Category{
	CatPython,
	CatJavaScript,
	CatJava,
	CatAlgorithm,
	CatDataStructure,
	CatDatabase,
	CatWeb,
	CatOOP,
	CatNetwork,
	CatAI,
	CatSecurity,
	CatGit,
	CatOS,
}

// Keywords maps each category to its lowercase trigger phrases. Matching is
// plain substring containment, so short phrases such as "ai" or "py" also fire
// inside unrelated words.
var Keywords = map[Category][]string{
	CatPython:        {"python", "py", "django", "flask", "pandas", "numpy"},
	CatJavaScript:    {"javascript", "js", "node", "react", "vue", "angular", "typescript"},
	CatJava:          {"java", "spring", "jvm", "maven", "gradle"},
	CatAlgorithm:     {"algorithm", "sorting", "searching", "complexity", "big o", "time complexity", "space complexity"},
	CatDataStructure: {"array", "linked list", "tree", "graph", "stack", "queue", "hash", "heap", "binary tree"},
	CatDatabase:      {"database", "sql", "nosql", "mongodb", "postgresql", "mysql", "query"},
	CatWeb:           {"html", "css", "frontend", "backend", "api", "rest", "http", "server"},
	CatOOP:           {"oop", "class", "object", "inheritance", "polymorphism", "encapsulation"},
	CatNetwork:       {"network", "tcp", "ip", "protocol", "socket", "dns"},
	CatAI:            {"ai", "machine learning", "ml", "neural network", "deep learning", "nlp"},
	CatSecurity:      {"security", "encryption", "cryptography", "authentication", "vulnerability"},
	CatGit:           {"git", "github", "version control", "commit", "branch", "merge"},
	CatOS:            {"operating system", "linux", "windows", "process", "thread", "memory"},
}

// GenericTerms mark input as CS related when no category matched.
var GenericTerms = []string{
	"program", "code", "software", "computer", "development",
	"engineer", "function", "variable", "loop", "debug",
}

// Tables groups the static data a Taxonomy is built from.
type Tables struct {
	Order        []Category
	Keywords     map[Category][]string
	GenericTerms []string
	Responses    map[Category]string
	Fallbacks    []string
	OutOfDomain  string
}

// DefaultTables returns the compiled-in tables.
func DefaultTables() Tables {
	return Tables{
		Order:        Order,
		Keywords:     Keywords,
		GenericTerms: GenericTerms,
		Responses:    Responses,
		Fallbacks:    FallbackResponses,
		OutOfDomain:  OutOfDomainResponse,
	}
}

// Taxonomy is an immutable, validated copy of Tables.
type Taxonomy struct {
	order       []Category
	keywords    map[Category][]string
	generic     []string
	responses   map[Category]string
	fallbacks   []string
	outOfDomain string
}

// New validates t and returns a Taxonomy that owns private copies of it.
func New(t Tables) (*Taxonomy, error) {
	if err := Validate(t); err != nil {
		return nil, err
	}

	keywords := make(map[Category][]string, len(t.Keywords))
	for c, phrases := range t.Keywords {
		keywords[c] = slices.Clone(phrases)
	}
	responses := make(map[Category]string, len(t.Responses))
	for c, text := range t.Responses {
		responses[c] = text
	}

	return &Taxonomy{
		order:       slices.Clone(t.Order),
		keywords:    keywords,
		generic:     slices.Clone(t.GenericTerms),
		responses:   responses,
		fallbacks:   slices.Clone(t.Fallbacks),
		outOfDomain: t.OutOfDomain,
	}, nil
}

// MustDefault builds the compiled-in taxonomy and panics if it is malformed.
func MustDefault() *Taxonomy {
	tax, err := New(DefaultTables())
	if err != nil {
		panic(err)
	}
	return tax
}

func (t *Taxonomy) Categories() []Category {
	return slices.Clone(t.order)
}

func (t *Taxonomy) Triggers(c Category) []string {
	return slices.Clone(t.keywords[c])
}

func (t *Taxonomy) Response(c Category) (string, bool) {
	text, ok := t.responses[c]
	return text, ok
}

func (t *Taxonomy) GenericTerms() []string {
	return slices.Clone(t.generic)
}

func (t *Taxonomy) Fallbacks() []string {
	return slices.Clone(t.fallbacks)
}

func (t *Taxonomy) OutOfDomain() string {
	return t.outOfDomain
}

package techstack

// Category names double as the keys of Stack.ToMap output.
type Category string

const (
	CategoryLanguage       Category = "languages"
	CategoryFramework      Category = "frameworks"
	CategoryBuildTool      Category = "build_tools"
	CategoryTesting        Category = "testing_frameworks"
	CategoryPackageManager Category = "package_managers"
	CategoryCICD           Category = "ci_cd"
	CategoryCloud          Category = "cloud_providers"
)

// Categories lists every category in a fixed order. ToMap emits all of them
// even when empty.
var Categories = []Category{
	CategoryLanguage,
	CategoryFramework,
	CategoryBuildTool,
	CategoryTesting,
	CategoryPackageManager,
	CategoryCICD,
	CategoryCloud,
}

// Rule infers one technology from the repository contents. Globs match
// against the slash-separated relative path or its base name. When Contains
// is non-empty the rule additionally requires one of the substrings to appear
// in a matched file; glob-only rules fire on the path match alone.
type Rule struct {
	Name     string
	Category Category
	Globs    []string
	Contains []string
}

// baseRules is the static detection table. Rule order never affects the
// result: firings accumulate into sets.
var baseRules = []Rule{
	// languages
	{Name: "go", Category: CategoryLanguage, Globs: []string{"*.go", "go.mod"}},
	{Name: "python", Category: CategoryLanguage, Globs: []string{"*.py"}},
	{Name: "javascript", Category: CategoryLanguage, Globs: []string{"*.js", "*.jsx"}},
	{Name: "typescript", Category: CategoryLanguage, Globs: []string{"*.ts", "*.tsx"}},
	{Name: "java", Category: CategoryLanguage, Globs: []string{"*.java"}},
	{Name: "ruby", Category: CategoryLanguage, Globs: []string{"*.rb", "Gemfile"}},
	{Name: "rust", Category: CategoryLanguage, Globs: []string{"*.rs", "Cargo.toml"}},
	{Name: "csharp", Category: CategoryLanguage, Globs: []string{"*.cs", "*.csproj"}},

	// frameworks (manifest-content sniffing)
	{Name: "react", Category: CategoryFramework, Globs: []string{"package.json"}, Contains: []string{`"react"`}},
	{Name: "vue", Category: CategoryFramework, Globs: []string{"package.json"}, Contains: []string{`"vue"`}},
	{Name: "angular", Category: CategoryFramework, Globs: []string{"package.json"}, Contains: []string{`"@angular/core"`}},
	{Name: "express", Category: CategoryFramework, Globs: []string{"package.json"}, Contains: []string{`"express"`}},
	{Name: "django", Category: CategoryFramework, Globs: []string{"requirements.txt", "pyproject.toml"}, Contains: []string{"django"}},
	{Name: "flask", Category: CategoryFramework, Globs: []string{"requirements.txt", "pyproject.toml"}, Contains: []string{"flask"}},
	{Name: "spring", Category: CategoryFramework, Globs: []string{"pom.xml", "build.gradle"}, Contains: []string{"springframework", "spring-boot"}},
	{Name: "rails", Category: CategoryFramework, Globs: []string{"Gemfile"}, Contains: []string{"rails"}},

	// build tools
	{Name: "maven", Category: CategoryBuildTool, Globs: []string{"pom.xml"}},
	{Name: "gradle", Category: CategoryBuildTool, Globs: []string{"build.gradle", "build.gradle.kts"}},
	{Name: "make", Category: CategoryBuildTool, Globs: []string{"Makefile"}},
	{Name: "cmake", Category: CategoryBuildTool, Globs: []string{"CMakeLists.txt"}},
	{Name: "webpack", Category: CategoryBuildTool, Globs: []string{"webpack.config.js", "webpack.config.ts"}},
	{Name: "vite", Category: CategoryBuildTool, Globs: []string{"vite.config.js", "vite.config.ts"}},
	{Name: "docker", Category: CategoryBuildTool, Globs: []string{"Dockerfile", "docker-compose.yml", "docker-compose.yaml"}},

	// testing frameworks: a dedicated config file is proof by itself, a
	// shared manifest needs its content inspected
	{Name: "jest", Category: CategoryTesting, Globs: []string{"jest.config.js", "jest.config.ts"}},
	{Name: "jest", Category: CategoryTesting, Globs: []string{"package.json"}, Contains: []string{`"jest"`}},
	{Name: "mocha", Category: CategoryTesting, Globs: []string{".mocharc.yml"}},
	{Name: "mocha", Category: CategoryTesting, Globs: []string{"package.json"}, Contains: []string{`"mocha"`}},
	{Name: "pytest", Category: CategoryTesting, Globs: []string{"pytest.ini"}},
	{Name: "pytest", Category: CategoryTesting, Globs: []string{"requirements.txt", "pyproject.toml"}, Contains: []string{"pytest"}},
	{Name: "junit", Category: CategoryTesting, Globs: []string{"pom.xml", "build.gradle"}, Contains: []string{"junit"}},
	{Name: "rspec", Category: CategoryTesting, Globs: []string{".rspec"}},
	{Name: "rspec", Category: CategoryTesting, Globs: []string{"Gemfile"}, Contains: []string{"rspec"}},

	// package managers
	{Name: "npm", Category: CategoryPackageManager, Globs: []string{"package-lock.json"}},
	{Name: "yarn", Category: CategoryPackageManager, Globs: []string{"yarn.lock"}},
	{Name: "pnpm", Category: CategoryPackageManager, Globs: []string{"pnpm-lock.yaml"}},
	{Name: "pip", Category: CategoryPackageManager, Globs: []string{"requirements.txt"}},
	{Name: "pipenv", Category: CategoryPackageManager, Globs: []string{"Pipfile"}},
	{Name: "poetry", Category: CategoryPackageManager, Globs: []string{"poetry.lock"}},
	{Name: "go-modules", Category: CategoryPackageManager, Globs: []string{"go.sum", "go.mod"}},
	{Name: "cargo", Category: CategoryPackageManager, Globs: []string{"Cargo.lock"}},
	{Name: "bundler", Category: CategoryPackageManager, Globs: []string{"Gemfile.lock"}},
	{Name: "nuget", Category: CategoryPackageManager, Globs: []string{"packages.config", "*.csproj"}},

	// CI/CD systems
	{Name: "github-actions", Category: CategoryCICD, Globs: []string{".github/workflows/*.yml", ".github/workflows/*.yaml"}},
	{Name: "gitlab-ci", Category: CategoryCICD, Globs: []string{".gitlab-ci.yml"}},
	{Name: "jenkins", Category: CategoryCICD, Globs: []string{"Jenkinsfile"}},
	{Name: "circleci", Category: CategoryCICD, Globs: []string{".circleci/config.yml"}},
	{Name: "azure-pipelines", Category: CategoryCICD, Globs: []string{"azure-pipelines.yml"}},
	{Name: "travis", Category: CategoryCICD, Globs: []string{".travis.yml"}},

	// cloud providers
	{Name: "aws", Category: CategoryCloud, Globs: []string{"serverless.yml", "template.yaml", "samconfig.toml"}},
	{Name: "gcp", Category: CategoryCloud, Globs: []string{"app.yaml", "cloudbuild.yaml"}},
	{Name: "azure", Category: CategoryCloud, Globs: []string{"azure-pipelines.yml", "host.json"}},
	{Name: "heroku", Category: CategoryCloud, Globs: []string{"Procfile"}},
	{Name: "terraform", Category: CategoryCloud, Globs: []string{"*.tf"}},
}

// BaseRules returns a copy of the built-in detection table.
func BaseRules() []Rule {
	out := make([]Rule, len(baseRules))
	copy(out, baseRules)
	return out
}

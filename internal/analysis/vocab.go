package analysis

// skillVocabulary is the fixed set of skill terms the skills analyzer
// matches against posting text. Grouped for maintenance only; matching
// treats it as one flat list.
var skillVocabulary = []string{
	// Languages
	"Python", "Java", "JavaScript", "TypeScript", "Go", "Rust", "C++", "C#",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "SQL",

	// Web frameworks
	"React", "Angular", "Vue", "Node.js", "Next.js", "Django", "Flask",
	"FastAPI", "Spring", "Rails", ".NET", "GraphQL", "REST",

	// Data
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch", "Kafka",
	"Spark", "Snowflake", "Airflow", "dbt", "Tableau", "Power BI", "pandas",
	"Excel",

	// ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "NLP",
	"Data Analysis", "Data Science", "Statistics",

	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible",
	"Jenkins", "CI/CD", "Git", "Linux", "Microservices", "Serverless",
	"DevOps", "Monitoring", "Security",

	// Mobile and design
	"iOS", "Android", "React Native", "Flutter", "Figma", "UX", "UI",

	// Process and soft skills
	"Agile", "Scrum", "Project Management", "Product Management",
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Collaboration", "Mentoring", "Stakeholder Management",
	"Time Management", "Critical Thinking", "Attention to Detail",
	"Presentation", "Negotiation", "Analytical Skills", "Adaptability",
	"Customer Service", "Sales", "Marketing", "SEO", "Testing", "TDD",
	"Accessibility",
}

// responsibilityVocabulary is the fixed pattern set for the
// responsibilities fallback analyzer. Keys are the canonical display form,
// values are the match terms.
var responsibilityVocabulary = map[string][]string{
	"Design and build new features":         {"design", "build", "develop", "implement"},
	"Collaborate with cross-functional teams": {"collaborate", "cross-functional", "work closely"},
	"Maintain and improve existing systems":   {"maintain", "improve", "refactor", "optimize"},
	"Review code and uphold quality":          {"code review", "review code", "quality"},
	"Write and maintain tests":                {"test", "testing", "unit test"},
	"Deploy and operate production services":  {"deploy", "production", "operate", "on-call"},
	"Mentor and support team members":         {"mentor", "coach", "support team"},
	"Analyze data and report findings":        {"analyze", "analysis", "report", "metrics"},
	"Communicate with stakeholders":           {"stakeholder", "communicate", "present"},
	"Document systems and processes":          {"document", "documentation"},
	"Lead projects end to end":                {"lead", "drive", "own", "end-to-end"},
	"Troubleshoot and resolve issues":         {"troubleshoot", "debug", "resolve", "incident"},
}

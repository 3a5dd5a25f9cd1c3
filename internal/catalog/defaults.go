package catalog

import "github.com/jonathan/career-compass/internal/types"

// Default returns the built-in catalog. The data here is the reference
// catalog; deployments can replace any part of it with JSON catalog files
// without code changes.
func Default() *Catalog {
	c, err := New(defaultData())
	if err != nil {
		// The built-in data is validated by tests; a construction failure
		// here is a programming error.
		panic(err)
	}
	return c
}

func defaultData() *Data {
	return &Data{
		Careers:        defaultCareers(),
		SkillGroups:    defaultSkillGroups(),
		Resources:      defaultResources(),
		Certifications: defaultCertifications(),
		Tools:          defaultTools(),
		Dependencies:   defaultDependencies(),
		RelatedSkills:  defaultRelatedSkills(),
	}
}

func defaultCareers() []types.CareerProfile {
	return []types.CareerProfile{
		{
			Title:       "Full Stack Developer",
			Description: "Build and maintain both frontend and backend of web applications",
			RequiredSkills: []string{
				"javascript", "html", "css", "python", "node.js", "react",
				"sql", "git", "rest api", "mongodb",
			},
			AverageSalary: "$95,000 - $140,000",
			GrowthRate:    "22% (Much faster than average)",
			Category:      "Software Development",
		},
		{
			Title:       "Data Scientist",
			Description: "Analyze complex data to help organizations make better decisions",
			RequiredSkills: []string{
				"python", "machine learning", "statistics", "sql", "pandas",
				"numpy", "data visualization", "r", "scikit-learn", "tensorflow",
			},
			AverageSalary: "$100,000 - $150,000",
			GrowthRate:    "36% (Much faster than average)",
			Category:      "Data & Analytics",
		},
		{
			Title:       "DevOps Engineer",
			Description: "Bridge development and operations to improve deployment efficiency",
			RequiredSkills: []string{
				"linux", "docker", "kubernetes", "jenkins", "aws", "python",
				"bash", "ci/cd", "terraform", "monitoring",
			},
			AverageSalary: "$105,000 - $155,000",
			GrowthRate:    "25% (Much faster than average)",
			Category:      "Infrastructure",
		},
		{
			Title:       "Machine Learning Engineer",
			Description: "Design and implement machine learning applications and systems",
			RequiredSkills: []string{
				"python", "machine learning", "deep learning", "tensorflow",
				"pytorch", "algorithms", "statistics", "nlp", "computer vision", "cloud",
			},
			AverageSalary: "$115,000 - $175,000",
			GrowthRate:    "40% (Much faster than average)",
			Category:      "AI & Machine Learning",
		},
		{
			Title:       "Frontend Developer",
			Description: "Create engaging user interfaces for web applications",
			RequiredSkills: []string{
				"javascript", "html", "css", "react", "typescript", "webpack",
				"git", "responsive design", "sass", "rest api",
			},
			AverageSalary: "$85,000 - $130,000",
			GrowthRate:    "20% (Faster than average)",
			Category:      "Software Development",
		},
		{
			Title:       "Backend Developer",
			Description: "Build server-side logic and database systems",
			RequiredSkills: []string{
				"python", "java", "sql", "rest api", "microservices", "docker",
				"mongodb", "redis", "git", "node.js",
			},
			AverageSalary: "$90,000 - $135,000",
			GrowthRate:    "22% (Much faster than average)",
			Category:      "Software Development",
		},
		{
			Title:       "Mobile App Developer",
			Description: "Create applications for mobile devices",
			RequiredSkills: []string{
				"swift", "kotlin", "react native", "flutter", "mobile ui",
				"rest api", "git", "firebase", "ios", "android",
			},
			AverageSalary: "$90,000 - $140,000",
			GrowthRate:    "24% (Much faster than average)",
			Category:      "Software Development",
		},
		{
			Title:       "Cloud Architect",
			Description: "Design and manage cloud computing strategies",
			RequiredSkills: []string{
				"aws", "azure", "cloud architecture", "security", "networking",
				"docker", "kubernetes", "terraform", "microservices", "ci/cd",
			},
			AverageSalary: "$125,000 - $180,000",
			GrowthRate:    "28% (Much faster than average)",
			Category:      "Infrastructure",
		},
		{
			Title:       "Product Manager",
			Description: "Guide product development from conception to launch",
			RequiredSkills: []string{
				"product strategy", "agile", "roadmapping", "stakeholder management",
				"data analysis", "communication", "user research", "jira", "sql", "leadership",
			},
			AverageSalary: "$110,000 - $165,000",
			GrowthRate:    "18% (Faster than average)",
			Category:      "Product & Management",
		},
		{
			Title:       "UX/UI Designer",
			Description: "Design user experiences and interfaces for digital products",
			RequiredSkills: []string{
				"figma", "user research", "wireframing", "prototyping", "html",
				"css", "design systems", "usability testing", "adobe xd", "interaction design",
			},
			AverageSalary: "$80,000 - $125,000",
			GrowthRate:    "16% (Faster than average)",
			Category:      "Design",
		},
		{
			Title:       "Data Engineer",
			Description: "Build and maintain data infrastructure and pipelines",
			RequiredSkills: []string{
				"python", "sql", "etl", "spark", "airflow", "aws", "kafka",
				"data warehousing", "big data", "hadoop",
			},
			AverageSalary: "$105,000 - $160,000",
			GrowthRate:    "33% (Much faster than average)",
			Category:      "Data & Analytics",
		},
		{
			Title:       "Cybersecurity Analyst",
			Description: "Protect systems and networks from security threats",
			RequiredSkills: []string{
				"network security", "penetration testing", "security auditing",
				"firewalls", "encryption", "incident response", "linux", "python", "risk assessment",
			},
			AverageSalary: "$95,000 - $145,000",
			GrowthRate:    "35% (Much faster than average)",
			Category:      "Security",
		},
		{
			Title:       "Business Analyst",
			Description: "Analyze business processes and recommend improvements",
			RequiredSkills: []string{
				"data analysis", "sql", "excel", "requirements gathering",
				"process modeling", "communication", "stakeholder management", "agile", "tableau",
			},
			AverageSalary: "$75,000 - $115,000",
			GrowthRate:    "14% (Faster than average)",
			Category:      "Business & Analytics",
		},
		{
			Title:       "AI Research Scientist",
			Description: "Conduct research in artificial intelligence and develop new AI models",
			RequiredSkills: []string{
				"machine learning", "deep learning", "research", "python",
				"mathematics", "algorithms", "pytorch", "tensorflow", "nlp", "computer vision",
			},
			AverageSalary: "$130,000 - $200,000",
			GrowthRate:    "45% (Much faster than average)",
			Category:      "AI & Machine Learning",
		},
		{
			Title:       "QA Engineer",
			Description: "Ensure software quality through testing and automation",
			RequiredSkills: []string{
				"testing", "selenium", "automation", "python", "java",
				"junit", "jest", "ci/cd", "agile", "bug tracking",
			},
			AverageSalary: "$75,000 - $115,000",
			GrowthRate:    "15% (Faster than average)",
			Category:      "Quality Assurance",
		},
	}
}

func defaultSkillGroups() map[string][]string {
	return map[string][]string{
		"programming": {
			"python", "javascript", "java", "c++", "c#", "ruby", "php", "swift",
			"kotlin", "go", "rust", "typescript", "r", "matlab", "scala", "perl",
		},
		"web_development": {
			"html", "css", "react", "angular", "vue", "node.js", "express",
			"django", "flask", "fastapi", "spring boot", "asp.net", "jquery",
			"webpack", "babel", "sass", "less", "bootstrap", "tailwind css",
		},
		"mobile_development": {
			"react native", "flutter", "android", "ios", "swift", "kotlin",
			"xamarin", "ionic", "cordova",
		},
		"database": {
			"sql", "mysql", "postgresql", "mongodb", "redis", "oracle",
			"sql server", "cassandra", "dynamodb", "elasticsearch", "neo4j",
		},
		"cloud": {
			"aws", "azure", "google cloud", "gcp", "docker", "kubernetes",
			"jenkins", "terraform", "ansible", "cloudformation", "heroku",
		},
		"data_science": {
			"machine learning", "deep learning", "tensorflow", "pytorch",
			"scikit-learn", "pandas", "numpy", "data analysis", "statistics",
			"tableau", "power bi", "jupyter", "r studio",
		},
		"ai_ml": {
			"artificial intelligence", "nlp", "computer vision", "neural networks",
			"reinforcement learning", "keras", "opencv", "hugging face",
		},
		"devops": {
			"ci/cd", "git", "github", "gitlab", "bitbucket", "linux",
			"bash", "powershell", "monitoring", "prometheus", "grafana",
		},
		"soft_skills": {
			"leadership", "communication", "teamwork", "problem solving",
			"critical thinking", "project management", "agile", "scrum",
			"time management", "collaboration",
		},
		"tools": {
			"jira", "confluence", "slack", "vs code", "intellij", "eclipse",
			"postman", "figma", "adobe xd", "photoshop", "illustrator",
		},
		"testing": {
			"unit testing", "integration testing", "selenium", "jest",
			"pytest", "junit", "cypress", "testng", "qa", "quality assurance",
		},
		"security": {
			"cybersecurity", "penetration testing", "encryption", "oauth",
			"jwt", "ssl", "firewall", "security auditing",
		},
	}
}

func defaultResources() map[string]SkillResources {
	return map[string]SkillResources{
		"python": {
			Courses: []types.LearningResource{
				{Title: "Python for Everybody", Type: "course", URL: "https://www.coursera.org/specializations/python", Duration: "8 months", Difficulty: "beginner"},
				{Title: "Complete Python Bootcamp", Type: "course", URL: "https://www.udemy.com/course/complete-python-bootcamp/", Duration: "22 hours", Difficulty: "beginner"},
			},
			Projects: []types.Project{
				{Title: "Build a Web Scraper", Description: "Create a web scraper to extract data from websites", SkillsPracticed: []string{"python", "beautifulsoup", "requests"}, Difficulty: "intermediate", EstimatedTime: "1 week"},
				{Title: "Personal Portfolio Website Backend", Description: "Build a REST API for your portfolio", SkillsPracticed: []string{"python", "fastapi", "sql"}, Difficulty: "intermediate", EstimatedTime: "2 weeks"},
			},
		},
		"javascript": {
			Courses: []types.LearningResource{
				{Title: "JavaScript - The Complete Guide", Type: "course", URL: "https://www.udemy.com/course/javascript-the-complete-guide-2020-beginner-advanced/", Duration: "52 hours", Difficulty: "beginner"},
				{Title: "Modern JavaScript From The Beginning", Type: "course", URL: "https://www.udemy.com/course/modern-javascript-from-the-beginning/", Duration: "21 hours", Difficulty: "beginner"},
			},
			Projects: []types.Project{
				{Title: "Todo List App", Description: "Build an interactive todo list with local storage", SkillsPracticed: []string{"javascript", "html", "css"}, Difficulty: "beginner", EstimatedTime: "3 days"},
				{Title: "Weather Dashboard", Description: "Create a weather app using external APIs", SkillsPracticed: []string{"javascript", "api", "async"}, Difficulty: "intermediate", EstimatedTime: "1 week"},
			},
		},
		"react": {
			Courses: []types.LearningResource{
				{Title: "React - The Complete Guide", Type: "course", URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/", Duration: "48 hours", Difficulty: "intermediate"},
				{Title: "The Complete React Developer Course", Type: "course", URL: "https://www.udemy.com/course/react-2nd-edition/", Duration: "39 hours", Difficulty: "intermediate"},
			},
			Projects: []types.Project{
				{Title: "E-commerce Product Page", Description: "Build a responsive product showcase with cart", SkillsPracticed: []string{"react", "hooks", "context api"}, Difficulty: "intermediate", EstimatedTime: "2 weeks"},
				{Title: "Social Media Dashboard", Description: "Create a dashboard with real-time data", SkillsPracticed: []string{"react", "state management", "api integration"}, Difficulty: "advanced", EstimatedTime: "3 weeks"},
			},
		},
		"machine learning": {
			Courses: []types.LearningResource{
				{Title: "Machine Learning Specialization", Type: "course", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Duration: "3 months", Difficulty: "intermediate"},
				{Title: "Deep Learning Specialization", Type: "course", URL: "https://www.coursera.org/specializations/deep-learning", Duration: "5 months", Difficulty: "advanced"},
			},
			Projects: []types.Project{
				{Title: "House Price Predictor", Description: "Build a regression model to predict house prices", SkillsPracticed: []string{"machine learning", "scikit-learn", "data analysis"}, Difficulty: "intermediate", EstimatedTime: "2 weeks"},
				{Title: "Image Classifier", Description: "Create a CNN to classify images", SkillsPracticed: []string{"deep learning", "tensorflow", "computer vision"}, Difficulty: "advanced", EstimatedTime: "3 weeks"},
			},
		},
	}
}

func defaultCertifications() map[string][]types.Certification {
	return map[string][]types.Certification{
		"Full Stack Developer": {
			{Name: "AWS Certified Developer - Associate", Provider: "Amazon", URL: "https://aws.amazon.com/certification/", Cost: "$150", Duration: "3 months prep"},
			{Name: "Microsoft Certified: Azure Developer Associate", Provider: "Microsoft", URL: "https://learn.microsoft.com/certifications/", Cost: "$165", Duration: "2-3 months prep"},
		},
		"Data Scientist": {
			{Name: "Google Data Analytics Professional Certificate", Provider: "Google", URL: "https://grow.google/certificates/data-analytics/", Cost: "$49/month", Duration: "6 months"},
			{Name: "IBM Data Science Professional Certificate", Provider: "IBM", URL: "https://www.coursera.org/professional-certificates/ibm-data-science", Cost: "$49/month", Duration: "10 months"},
		},
		"DevOps Engineer": {
			{Name: "AWS Certified DevOps Engineer - Professional", Provider: "Amazon", URL: "https://aws.amazon.com/certification/", Cost: "$300", Duration: "4-6 months prep"},
			{Name: "Kubernetes Certified Administrator (CKA)", Provider: "CNCF", URL: "https://www.cncf.io/certification/cka/", Cost: "$395", Duration: "3 months prep"},
		},
		"Machine Learning Engineer": {
			{Name: "TensorFlow Developer Certificate", Provider: "Google", URL: "https://www.tensorflow.org/certificate", Cost: "$100", Duration: "2-3 months prep"},
			{Name: "AWS Certified Machine Learning - Specialty", Provider: "Amazon", URL: "https://aws.amazon.com/certification/", Cost: "$300", Duration: "4 months prep"},
		},
	}
}

func defaultTools() map[string][]string {
	return map[string][]string{
		"python":           {"PyCharm", "VS Code", "Jupyter Notebook", "Anaconda"},
		"javascript":       {"VS Code", "Node.js", "npm", "Chrome DevTools"},
		"react":            {"VS Code", "React DevTools", "Create React App", "Vite"},
		"machine learning": {"Jupyter", "Google Colab", "TensorBoard", "MLflow"},
		"docker":           {"Docker Desktop", "Docker Compose", "Kubernetes", "Minikube"},
		"git":              {"Git", "GitHub", "GitLab", "GitHub Desktop"},
	}
}

// defaultDependencies is the skill prerequisite graph. A DAG by
// construction; skills not listed have no prerequisites.
func defaultDependencies() map[string][]string {
	return map[string][]string{
		"html":       {},
		"css":        {"html"},
		"javascript": {"html", "css"},
		"react":      {"javascript"},
		"node.js":    {"javascript"},
		"python":     {},
		"django":     {"python"},
		"flask":      {"python"},
		"sql":        {},
		"mongodb":    {},
		"docker":     {"linux"},
		"kubernetes": {"docker"},
	}
}

func defaultRelatedSkills() map[string][]string {
	return map[string][]string{
		"python":           {"django", "flask", "fastapi", "pandas", "numpy"},
		"javascript":       {"node.js", "react", "vue", "angular", "typescript"},
		"java":             {"spring boot", "maven", "gradle"},
		"aws":              {"ec2", "s3", "lambda", "rds"},
		"machine learning": {"scikit-learn", "tensorflow", "pytorch"},
	}
}

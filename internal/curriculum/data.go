package curriculum

// Catalog data follows the OSSU computer-science track with Arabic-first
// titling. Lesson markdown bodies live with the static assets; only short
// summaries are embedded here.

func buildCatalog() Document {
	return Document{
		"prerequisites": {
			ID:          "prerequisites",
			Title:       "المتطلبات الأساسية",
			TitleEn:     "Prerequisites",
			Description: "المهارات الأساسية المطلوبة قبل البدء في منهج علوم الحاسوب",
			Courses: CourseList{
				{
					ID:       "core-cs-tools",
					Title:    "أدوات علوم الحاسوب الأساسية",
					TitleEn:  "Core CS Tools",
					Provider: "MIT",
					Duration: "1-2 weeks",
					Effort:   "3-5 hours/week",
					Topics:   []string{"Command Line", "Git", "Text Editors", "Development Environment"},
					TopicsAr: []string{"سطر الأوامر", "نظام Git", "محررات النصوص", "بيئة التطوير"},
					URL:      "https://missing.csail.mit.edu/",
					Lessons: []Lesson{
						{ID: "command-line-intro", Week: 1, Title: "مقدمة في سطر الأوامر", TitleEn: "Introduction to Command Line",
							Content: "واجهة نصية للتفاعل مع نظام التشغيل: التنقل بين المجلدات وإدارة الملفات وتنفيذ الأوامر."},
						{ID: "git-basics", Week: 2, Title: "أساسيات Git", TitleEn: "Git Basics",
							Content: "تعلم استخدام Git لإدارة الكود وتتبع التغييرات والتعاون مع الآخرين."},
					},
				},
			},
		},
		"introCS": {
			ID:          "intro-cs",
			Title:       "مقدمة في علوم الحاسوب",
			TitleEn:     "Intro CS",
			Description: "مقدمة شاملة في علوم الحاسوب والبرمجة",
			Courses: CourseList{
				{
					ID:       "intro-cs-python",
					Title:    "مقدمة في علوم الحاسوب والبرمجة باستخدام Python",
					TitleEn:  "Introduction to Computer Science and Programming Using Python",
					Provider: "MIT",
					Duration: "14 weeks",
					Effort:   "6-10 hours/week",
					Topics:   []string{"Python Programming", "Data Structures", "Algorithms", "Problem Solving"},
					TopicsAr: []string{"برمجة Python", "هياكل البيانات", "الخوارزميات", "حل المشاكل"},
					URL:      "https://ocw.mit.edu/courses/6-100l-introduction-to-cs-and-programming-using-python-fall-2022/",
					Lessons: []Lesson{
						{ID: "python-variables", Week: 1, Title: "مقدمة في البرمجة والمتغيرات", TitleEn: "Introduction to Programming and Variables",
							Content: "المتغيرات وأنواع البيانات والعمليات الحسابية، مع أمثلة بأسماء متغيرات عربية."},
						{ID: "python-control-flow", Week: 2, Title: "التحكم في التدفق والشروط", TitleEn: "Control Flow and Conditionals",
							Content: "جمل الشرط والحلقات وتطبيقاتها العملية."},
						{ID: "python-functions", Week: 3, Title: "الدوال والتجريد", TitleEn: "Functions and Abstraction",
							Content: "تعريف الدوال وتمرير المعاملات وإعادة القيم."},
					},
				},
			},
		},
		"coreCS": {
			ID:          "core-cs",
			Title:       "علوم الحاسوب الأساسية",
			TitleEn:     "Core CS",
			Description: "المنهج الأساسي لعلوم الحاسوب",
			Sections: SubsectionMap{
				"programming": {
					ID:      "core-programming",
					Title:   "البرمجة الأساسية",
					TitleEn: "Core Programming",
					Courses: CourseList{
						{
							ID:       "systematic-program-design",
							Title:    "التصميم المنهجي للبرامج",
							TitleEn:  "How to Code - Simple Data",
							Provider: "UBC",
							Duration: "13 weeks",
							Effort:   "8-12 hours/week",
							Topics:   []string{"Program Design", "Data Structures", "Recursion", "Testing"},
							TopicsAr: []string{"تصميم البرامج", "هياكل البيانات", "الاستدعاء المتكرر", "الاختبار"},
							URL:      "https://www.edx.org/course/how-to-code-simple-data",
						},
						{
							ID:       "programming-languages-a",
							Title:    "لغات البرمجة - الجزء الأول",
							TitleEn:  "Programming Languages, Part A",
							Provider: "University of Washington",
							Duration: "5 weeks",
							Effort:   "4-8 hours/week",
							Topics:   []string{"Functional Programming", "Type Systems", "Pattern Matching"},
							TopicsAr: []string{"البرمجة الوظيفية", "أنظمة الأنواع", "مطابقة الأنماط"},
							URL:      "https://www.coursera.org/learn/programming-languages",
						},
					},
				},
				"math": {
					ID:      "core-math",
					Title:   "الرياضيات الأساسية",
					TitleEn: "Core Math",
					Courses: CourseList{
						{
							ID:       "calculus-1a",
							Title:    "حساب التفاضل والتكامل 1أ",
							TitleEn:  "Calculus 1A",
							Provider: "MIT",
							Duration: "13 weeks",
							Effort:   "6-10 hours/week",
							Topics:   []string{"Limits", "Derivatives", "Applications"},
							TopicsAr: []string{"النهايات", "المشتقات", "التطبيقات"},
							URL:      "https://www.edx.org/course/calculus-1a-differentiation",
						},
						{
							ID:       "math-for-cs",
							Title:    "الرياضيات لعلوم الحاسوب",
							TitleEn:  "Mathematics for Computer Science",
							Provider: "MIT",
							Duration: "13 weeks",
							Effort:   "5 hours/week",
							Topics:   []string{"Discrete Mathematics", "Proofs", "Probability"},
							TopicsAr: []string{"الرياضيات المتقطعة", "البراهين", "الاحتمالات"},
							URL:      "https://ocw.mit.edu/courses/6-042j-mathematics-for-computer-science-spring-2015/",
						},
					},
				},
				"systems": {
					ID:      "core-systems",
					Title:   "أنظمة الحاسوب",
					TitleEn: "Core Systems",
					Courses: CourseList{
						{
							ID:       "nand2tetris",
							Title:    "بناء حاسوب حديث من المبادئ الأولى",
							TitleEn:  "Build a Modern Computer from First Principles",
							Provider: "Hebrew University of Jerusalem",
							Duration: "6 weeks",
							Effort:   "7-13 hours/week",
							Topics:   []string{"Logic Gates", "Machine Language", "Computer Architecture"},
							TopicsAr: []string{"البوابات المنطقية", "لغة الآلة", "معمارية الحاسوب"},
							URL:      "https://www.coursera.org/learn/build-a-computer",
						},
						{
							ID:       "computer-networking",
							Title:    "شبكات الحاسوب",
							TitleEn:  "Computer Networking",
							Provider: "Stanford",
							Duration: "8 weeks",
							Effort:   "4-12 hours/week",
							Topics:   []string{"Internet Protocols", "Routing", "Congestion Control"},
							TopicsAr: []string{"بروتوكولات الإنترنت", "التوجيه", "التحكم في الازدحام"},
							URL:      "https://cs144.github.io/",
						},
					},
				},
			},
		},
	}
}

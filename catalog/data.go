package catalog

import "github.com/AmoolyaSuneja/EduStream/models"

var builtinCourses = []models.Course{
	{
		ID:          "1",
		Title:       "React Fundamentals",
		Description: "Master the fundamentals of React including components, props, state, and modern hooks. Build real-world applications with confidence.",
		Instructor:  "Sarah Johnson",
		Duration:    "8 hours",
		Level:       models.LevelBeginner,
		Thumbnail:   "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400&h=300&fit=crop",
		Enrolled:    true,
		Lessons: []models.Lesson{
			{
				ID:       "1-1",
				Title:    "Introduction to React",
				Duration: 15,
				VideoURL: "https://www.youtube.com/embed/w7ejDZ8SWv8",
				Content: models.LessonContent{
					Description: "Welcome to React! In this lesson, we'll explore what React is, why it's popular, and how it revolutionizes web development.",
					KeyPoints: []string{
						"React is a JavaScript library for building user interfaces",
						"Virtual DOM makes React applications fast and efficient",
						"Component-based architecture promotes reusability",
						"React is maintained by Facebook and has huge community support",
					},
					Transcript: "React is a powerful JavaScript library that has transformed how we build user interfaces...",
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q1-1",
						Question:      "What is React primarily used for?",
						Options:       []string{"Building user interfaces", "Server-side programming", "Database management", "Mobile app testing"},
						CorrectAnswer: 0,
						Explanation:   "React is a JavaScript library specifically designed for building user interfaces for web applications.",
					},
					{
						ID:            "q1-2",
						Question:      "What makes React applications fast?",
						Options:       []string{"TypeScript", "Virtual DOM", "CSS-in-JS", "Redux"},
						CorrectAnswer: 1,
						Explanation:   "The Virtual DOM allows React to efficiently update the actual DOM by calculating the minimum changes needed.",
					},
				}},
			},
			{
				ID:       "1-2",
				Title:    "Components and JSX",
				Duration: 20,
				VideoURL: "https://www.youtube.com/embed/bMknfKXIFA8",
				Content: models.LessonContent{
					Description: "Learn about React components and JSX syntax. Understand how to create reusable UI elements and write JSX effectively.",
					KeyPoints: []string{
						"Components are the building blocks of React applications",
						"JSX allows you to write HTML-like syntax in JavaScript",
						"Functional components are the modern way to write components",
						"Props allow data to flow between components",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q2-1",
						Question:      "What does JSX stand for?",
						Options:       []string{"JavaScript XML", "Java Syntax Extension", "JSON XML", "JavaScript Extension"},
						CorrectAnswer: 0,
						Explanation:   "JSX stands for JavaScript XML, allowing you to write HTML-like syntax in JavaScript.",
					},
					{
						ID:            "q2-2",
						Question:      "How do you pass data to a component?",
						Options:       []string{"State", "Props", "Context", "Refs"},
						CorrectAnswer: 1,
						Explanation:   "Props (properties) are used to pass data from parent components to child components.",
					},
				}},
			},
			{
				ID:       "1-3",
				Title:    "Props and State",
				Duration: 25,
				VideoURL: "https://www.youtube.com/embed/35lXWvCuM8o",
				Content: models.LessonContent{
					Description: "Dive deep into props and state - the core concepts for data management in React components.",
					KeyPoints: []string{
						"Props are read-only data passed from parent to child",
						"State is mutable data managed within a component",
						"useState hook manages state in functional components",
						"State updates trigger component re-renders",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q3-1",
						Question:      "Can you modify props inside a component?",
						Options:       []string{"Yes, always", "No, props are read-only", "Only with special methods", "Only in class components"},
						CorrectAnswer: 1,
						Explanation:   "Props are read-only and should never be modified within the component that receives them.",
					},
					{
						ID:            "q3-2",
						Question:      "What is the main difference between props and state?",
						Options:       []string{"Props are mutable, state is immutable", "Props are read-only, state is mutable", "Props are for styling, state is for data", "There is no difference"},
						CorrectAnswer: 1,
						Explanation:   "Props are read-only data passed from parent to child, while state is mutable data managed within a component.",
					},
				}},
			},
			{
				ID:       "1-4",
				Title:    "React useEffect Hook",
				Duration: 18,
				VideoURL: "https://www.youtube.com/embed/0ZJgIjIuY7U",
				Content: models.LessonContent{
					Description: "Understand the useEffect hook for side effects in React components.",
					KeyPoints: []string{
						"useEffect runs after render",
						"Can be used for data fetching, subscriptions, or manually changing the DOM",
						"Cleanup functions prevent memory leaks",
						"Dependency array controls when effect runs",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q4-1",
						Question:      "What does useEffect do?",
						Options:       []string{"Manages state", "Handles side effects", "Renders JSX", "Handles events"},
						CorrectAnswer: 1,
						Explanation:   "useEffect is used to handle side effects in React components.",
					},
					{
						ID:            "q4-2",
						Question:      "When does useEffect run?",
						Options:       []string{"Before render", "After render", "During render", "Never"},
						CorrectAnswer: 1,
						Explanation:   "useEffect runs after the component has been rendered to the DOM.",
					},
				}},
			},
		},
	},
	{
		ID:          "2",
		Title:       "JavaScript ES6+",
		Description: "Master modern JavaScript features including arrow functions, destructuring, promises, and async/await.",
		Instructor:  "Mike Chen",
		Duration:    "6 hours",
		Level:       models.LevelIntermediate,
		Thumbnail:   "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=400&h=300&fit=crop",
		Enrolled:    true,
		Lessons: []models.Lesson{
			{
				ID:       "2-1",
				Title:    "Arrow Functions",
				Duration: 12,
				VideoURL: "https://www.youtube.com/embed/h33Srr5J9nY",
				Content: models.LessonContent{
					Description: "Learn about arrow functions - a concise way to write functions in modern JavaScript.",
					KeyPoints: []string{
						"Arrow functions provide shorter syntax for writing functions",
						"They have lexical this binding",
						"Cannot be used as constructors",
						"Ideal for callbacks and array methods",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q4-1",
						Question:      "Which syntax represents an arrow function?",
						Options:       []string{"function() {}", "() => {}", "function => {}", "=> function {}"},
						CorrectAnswer: 1,
						Explanation:   "Arrow functions use the => syntax, like () => {} for a function with no parameters.",
					},
					{
						ID:            "q4-2",
						Question:      "What is the main advantage of arrow functions?",
						Options:       []string{"Shorter syntax", "Better performance", "More features", "Different syntax"},
						CorrectAnswer: 0,
						Explanation:   "Arrow functions provide a more concise syntax for writing functions.",
					},
				}},
			},
			{
				ID:       "2-2",
				Title:    "Destructuring Assignment",
				Duration: 18,
				VideoURL: "https://www.youtube.com/embed/NIq3qLaHCIs",
				Content: models.LessonContent{
					Description: "Master destructuring assignment to extract values from arrays and objects in an elegant way.",
					KeyPoints: []string{
						"Destructuring extracts values from arrays and objects",
						"Can provide default values for missing properties",
						"Works with nested objects and arrays",
						"Commonly used in function parameters",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q5-1",
						Question:      "What does const {name, age} = person; do?",
						Options:       []string{"Creates a new object", "Extracts name and age properties from person", "Assigns person to name and age", "Creates an array"},
						CorrectAnswer: 1,
						Explanation:   "This destructuring syntax extracts the name and age properties from the person object into separate variables.",
					},
					{
						ID:            "q5-2",
						Question:      "How do you provide a default value in destructuring?",
						Options:       []string{`const {name || "default"} = obj`, `const {name = "default"} = obj`, `const {name: "default"} = obj`, `const {name ?? "default"} = obj`},
						CorrectAnswer: 1,
						Explanation:   `Use the = operator to provide default values in destructuring: {name = "default"}`,
					},
				}},
			},
			{
				ID:       "2-3",
				Title:    "Promises and Async/Await",
				Duration: 22,
				VideoURL: "https://www.youtube.com/embed/DHvZLI7Db8E",
				Content: models.LessonContent{
					Description: "Learn how to handle asynchronous operations in JavaScript using Promises and async/await.",
					KeyPoints: []string{
						"Promises represent eventual completion or failure of async operations",
						"async/await simplifies working with Promises",
						"Error handling with try/catch",
						"Chaining Promises for sequential async tasks",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q6-1",
						Question:      "What does async/await help with?",
						Options:       []string{"Synchronous code", "Asynchronous code", "Styling", "DOM manipulation"},
						CorrectAnswer: 1,
						Explanation:   "async/await is used to write cleaner asynchronous code in JavaScript.",
					},
					{
						ID:            "q6-2",
						Question:      "What does the async keyword do?",
						Options:       []string{"Makes a function synchronous", "Makes a function return a Promise", "Makes a function faster", "Makes a function smaller"},
						CorrectAnswer: 1,
						Explanation:   "The async keyword makes a function return a Promise automatically.",
					},
					{
						ID:            "q6-3",
						Question:      "What is the main benefit of using async/await?",
						Options:       []string{"Better performance", "Cleaner code syntax", "More features", "Different syntax"},
						CorrectAnswer: 1,
						Explanation:   "async/await provides cleaner, more readable syntax for handling asynchronous operations.",
					},
				}},
			},
		},
	},
	{
		ID:          "3",
		Title:       "Web Development Bootcamp",
		Description: "Complete web development course covering HTML5, CSS3, and modern JavaScript with real projects.",
		Instructor:  "Emma Davis",
		Duration:    "12 hours",
		Level:       models.LevelBeginner,
		Thumbnail:   "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=400&h=300&fit=crop",
		Enrolled:    true,
		Lessons: []models.Lesson{
			{
				ID:       "3-1",
				Title:    "HTML5 Semantic Elements",
				Duration: 30,
				VideoURL: "https://www.youtube.com/embed/UB1O30fR-EE",
				Content: models.LessonContent{
					Description: "Learn about HTML5 semantic elements and how they improve accessibility and SEO.",
					KeyPoints: []string{
						"Semantic elements provide meaning to content",
						"Improves accessibility for screen readers",
						"Better SEO optimization",
						"Cleaner, more maintainable code structure",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q6-1",
						Question:      "Which is a semantic HTML5 element?",
						Options:       []string{"<div>", "<span>", "<article>", "<b>"},
						CorrectAnswer: 2,
						Explanation:   "<article> is a semantic element that represents a standalone piece of content.",
					},
				}},
			},
			{
				ID:       "3-2",
				Title:    "CSS3 Flexbox & Grid",
				Duration: 35,
				VideoURL: "https://www.youtube.com/embed/JJSoEo8JSnc",
				Content: models.LessonContent{
					Description: "Master modern CSS layout techniques with Flexbox and Grid.",
					KeyPoints: []string{
						"Flexbox is for one-dimensional layouts",
						"Grid is for two-dimensional layouts",
						"Responsive design with media queries",
						"Practical layout examples",
					},
				},
				Quiz: &models.Quiz{Questions: []models.Question{
					{
						ID:            "q7-1",
						Question:      "Which CSS module is best for two-dimensional layouts?",
						Options:       []string{"Flexbox", "Grid", "Float", "Inline-block"},
						CorrectAnswer: 1,
						Explanation:   "CSS Grid is designed for two-dimensional layouts.",
					},
					{
						ID:            "q7-2",
						Question:      "What is the main difference between Flexbox and Grid?",
						Options:       []string{"Grid is newer", "Flexbox is one-dimensional, Grid is two-dimensional", "Grid is faster", "Flexbox is more flexible"},
						CorrectAnswer: 1,
						Explanation:   "Flexbox is designed for one-dimensional layouts (row or column), while Grid is designed for two-dimensional layouts (rows and columns).",
					},
				}},
			},
		},
	},
}

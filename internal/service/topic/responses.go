package topic

const Greeting = "Hello! I'm your Computer Science assistant. Ask me anything about programming, algorithms, data structures, software engineering, and more!"

const OutOfDomainResponse = "I'm specialized in Computer Science topics. Please ask me about programming languages, algorithms, data structures, web development, databases, AI, security, or other CS-related subjects!"

// QuickQuestions are suggested right after the greeting.
var QuickQuestions = []string{
	"What is Python?",
	"Explain Big O notation",
	"What are data structures?",
	"Difference between SQL and NoSQL",
}

var FallbackResponses = []string{
	"That's a great CS question! Could you be more specific? I can help with algorithms, data structures, programming languages, or software engineering concepts.",
	"Interesting topic! In computer science, this relates to several areas. What specific aspect would you like to explore?",
	"Good question! This is an important concept in CS. Would you like to know about the theory, practical implementation, or best practices?",
	"I can help with that! Are you looking for an explanation of the concept, code examples, or use cases?",
	"That's a fundamental CS topic! Let me know if you want to dive into the technical details, common pitfalls, or real-world applications.",
}

var Responses = map[Category]string{
	CatPython: "Python is a high-level, interpreted programming language known for its simplicity and readability. " +
		"It's widely used in web development, data science, AI, and automation. " +
		"Popular frameworks include Django for web development and TensorFlow for machine learning.",

	CatJavaScript: "JavaScript is a versatile programming language primarily used for web development. " +
		"It runs in browsers and on servers (Node.js). " +
		"Modern frameworks like React, Vue, and Angular make building interactive web applications easier.",

	CatJava: "Java is an object-oriented, platform-independent language that follows the 'write once, run anywhere' principle. " +
		"It's commonly used for enterprise applications, Android development, and large-scale systems.",

	CatAlgorithm: "Algorithms are step-by-step procedures for solving problems. " +
		"Common types include sorting (QuickSort, MergeSort), searching (Binary Search), and graph algorithms (Dijkstra's, BFS, DFS). " +
		"We analyze algorithms using Big O notation for time and space complexity.",

	CatDataStructure: "Data structures organize and store data efficiently. Key structures include:\n" +
		"• Arrays: Fixed-size, contiguous memory\n" +
		"• Linked Lists: Dynamic, node-based\n" +
		"• Trees: Hierarchical (Binary Trees, BST, AVL)\n" +
		"• Graphs: Nodes with connections\n" +
		"• Hash Tables: Key-value pairs with O(1) average lookup",

	CatDatabase: "Databases store and manage data. " +
		"SQL databases (PostgreSQL, MySQL) use structured tables and relationships. " +
		"NoSQL databases (MongoDB, Redis) offer flexible schemas and horizontal scaling. " +
		"Choose based on your data structure and scaling needs.",

	CatWeb: "Web development involves frontend (HTML, CSS, JavaScript) for user interfaces and backend (Node.js, Python, Java) for server logic. " +
		"They communicate via APIs (REST, GraphQL). " +
		"Modern apps use frameworks for faster development.",

	CatOOP: "Object-Oriented Programming organizes code around objects and classes. Key principles:\n" +
		"• Encapsulation: Bundling data and methods\n" +
		"• Inheritance: Child classes inherit from parents\n" +
		"• Polymorphism: Objects behave differently based on type\n" +
		"• Abstraction: Hiding complex implementation details",

	CatNetwork: "Computer networks connect devices to share resources. " +
		"The TCP/IP model has layers: Application (HTTP, DNS), Transport (TCP, UDP), Internet (IP), and Link. " +
		"Understanding protocols is crucial for distributed systems.",

	CatAI: "Artificial Intelligence enables machines to learn and make decisions. " +
		"Machine Learning uses algorithms to learn from data. " +
		"Deep Learning uses neural networks with multiple layers. " +
		"Common applications include image recognition, NLP, and recommendation systems.",

	CatSecurity: "Computer security protects systems from threats. " +
		"Key concepts include encryption (symmetric/asymmetric), authentication (passwords, 2FA), authorization, and secure coding practices. " +
		"Always validate input and use HTTPS for web applications.",

	CatGit: "Git is a distributed version control system for tracking code changes. Basic commands:\n" +
		"• git init: Initialize repository\n" +
		"• git add: Stage changes\n" +
		"• git commit: Save changes\n" +
		"• git push/pull: Sync with remote\n" +
		"• git branch: Create branches for features",

	CatOS: "Operating Systems manage hardware and provide services to applications. " +
		"Key concepts include process management, memory management (virtual memory, paging), file systems, and scheduling algorithms. " +
		"Understanding OS fundamentals helps with system programming.",
}

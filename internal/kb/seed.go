package kb

import "helpbot/internal/models"

// seedEntries is the built-in knowledge base used when no KB_FILE is
// configured. Order matters: earlier entries win score ties.
var seedEntries = []models.KnowledgeEntry{
	{
		Question: "What are your opening hours?",
		Answer:   "We're open from 9 AM to 5 PM, Monday to Friday.",
	},
	{
		Question: "How can I return a product?",
		Answer:   "You can return any product within 30 days of purchase with the original receipt.",
	},
	{
		Question: "How long does shipping take?",
		Answer:   "Standard shipping takes 3-5 business days. Express shipping arrives the next business day.",
	},
	{
		Question: "How do I track my order?",
		Answer:   "Use the tracking link in your confirmation email, or log in to your account and open the order details.",
	},
	{
		Question: "How can I contact customer support?",
		Answer:   "You can reach us at support@example.com or call 1-800-555-0100 during opening hours.",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We accept all major credit cards, PayPal, and bank transfers.",
	},
}

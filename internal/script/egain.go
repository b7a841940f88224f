package script

import "github.com/acrowfliedover/eGainAssignment/pkg/domain"

// Default returns the embedded eGain pricing script.
// The data is static and validated by TestDefault, so a construction failure
// here means the source literal itself was edited into an invalid shape.
func Default() *Repository {
	r, err := New(defaultInitialStep, defaultSteps)
	if err != nil {
		panic("script: embedded default script is invalid: " + err.Error())
	}
	return r
}

const defaultInitialStep = "welcome"

var defaultSteps = []domain.Step{
	{
		ID:      "welcome",
		Message: "Welcome to eGain, we can help your company process and store instructional documents and build employee and customer facing AI agents. Here are the list of products we have:\n\nAI Agent: provides trusted answers using your documents, websites, and knowledge base. It helps resolve customer queries, reduces handle time, and decreases agent onboarding time.\n\nAI Knowledge Hub: serves as the central nervous system for enterprise knowledge. It connects disparate content repositories, from SharePoint and Confluence to websites and CRM knowledge bases, creating a single source of truth. It facilitates an intelligent collaboration between AI systems and subject matter experts to create accurate, contextual knowledge articles, curate content to ensure relevance and compliance and organize information for optimal discovery and application.\n\nWhich one of these do you want to look into?",
		Options: []domain.Option{
			{ID: "ai-agent", Text: "AI Agent", NextStep: "ai-agent-pricing"},
			{ID: "ai-knowledge-hub", Text: "AI Knowledge Hub", NextStep: "knowledge-hub-pricing"},
			{ID: "neither", Text: "Neither", NextStep: "exit"},
		},
	},
	{
		ID:      "ai-agent-pricing",
		Message: "We have two pricings for AI Agent:\n\n1. $0.50 per Resolution, sold in blocks of 100 ($50 per block). A Resolution is defined as a conversation with a customer followed by 24 hours of silence.\n\n2. $0.20 per self-service session, bought in blocks of 1000 billable session units for intelligent self-service for customers. A customer self-service session is initiated when a customer accesses the eGain self-service portal or API. The session ends when the user exits the session or remains inactive beyond the inactivity timeout period of 20 minutes. Billing is based on 10-minute increments, rounded up.\n\nWhich one of these are you interested in?",
		Options: []domain.Option{
			{ID: "option-1", Text: "Option 1", NextStep: "ai-agent-resolution-input"},
			{ID: "option-2", Text: "Option 2", NextStep: "ai-agent-session-input"},
			{ID: "neither-pricing", Text: "Neither", NextStep: "exit"},
		},
	},
	{
		ID:            "ai-agent-resolution-input",
		Message:       "Please enter a number of resolutions you will have per month so I can provide an estimated cost.",
		IsInputPrompt: true,
		InputKind:     domain.InputKindNumber,
	},
	{
		ID:            "ai-agent-session-input",
		Message:       "Please enter a number of self-service sessions you will have per month so I can provide an estimated cost. Note that sessions lasting longer than 10 minutes will count as 2, 20+ minutes 3 and so on.",
		IsInputPrompt: true,
		InputKind:     domain.InputKindNumber,
	},
	{
		ID:      "resolution-cost-calculation",
		Message: "Thank you for providing your resolution count. Here's your estimated monthly cost:\n\nYour Input: {userInput} resolutions per month\n\nTotal Monthly Cost: ${totalCost}\n\nThis estimate is based on our Resolution-Based Pricing model.",
		Options: []domain.Option{
			{ID: "restart", Text: "Return", NextStep: "welcome"},
		},
		IsEndStep: true,
	},
	{
		ID:      "session-cost-calculation",
		Message: "Thank you for providing your session count. Here's your estimated monthly cost:\n\nYour Input: {userInput} sessions per month\n\nTotal Monthly Cost: ${totalCost}\n\nThis estimate is based on our Self-Service Session Pricing model.",
		Options: []domain.Option{
			{ID: "restart", Text: "Return", NextStep: "welcome"},
		},
		IsEndStep: true,
	},
	{
		ID:      "knowledge-hub-pricing",
		Message: "We have two types of users that can use the knowledge hub.\n\nContact Center User: $25 per named user per month for AI-powered knowledge and guidance for contact center agents. A contact center user is anyone who works in a contact center or customer service group and needs to access the system, including agents, supervisors, managers, analysts, and knowledge management staff.\n\nEnterprise User: $12.50 per named user per month for AI-powered knowledge and guidance for enterprise users (outside the contact center). An enterprise user is any employee or consultant who does not work in the contact center of a customer service group. A named user is a uniquely identified individual authorized to access eGain AI Knowledge Hub.\n\nWhich one of these are you interested in?",
		Options: []domain.Option{
			{ID: "contact-center-user", Text: "Contact Center User", NextStep: "knowledge-hub-contact-center-input"},
			{ID: "enterprise-user", Text: "Enterprise User", NextStep: "knowledge-hub-enterprise-input"},
			{ID: "neither-user-type", Text: "Neither", NextStep: "exit"},
		},
	},
	{
		ID:            "knowledge-hub-contact-center-input",
		Message:       "Please enter a number of Contact Center Users you have so I can provide an estimated cost per month.",
		IsInputPrompt: true,
		InputKind:     domain.InputKindNumber,
	},
	{
		ID:            "knowledge-hub-enterprise-input",
		Message:       "Please enter a number of Enterprise Users you have so I can provide an estimated cost per month.",
		IsInputPrompt: true,
		InputKind:     domain.InputKindNumber,
	},
	{
		ID:      "contact-center-cost-calculation",
		Message: "Thank you for providing your Contact Center User count. Here's your estimated monthly cost:\n\nYour Input: {userInput} Contact Center Users\n\nTotal Monthly Cost: ${totalCost}\n\nThis estimate is based on our Contact Center User pricing model.",
		Options: []domain.Option{
			{ID: "restart", Text: "Return", NextStep: "welcome"},
		},
		IsEndStep: true,
	},
	{
		ID:      "enterprise-cost-calculation",
		Message: "Thank you for providing your Enterprise User count. Here's your estimated monthly cost:\n\nYour Input: {userInput} Enterprise Users\n\nTotal Monthly Cost: ${totalCost}\n\nThis estimate is based on our Enterprise User pricing model.",
		Options: []domain.Option{
			{ID: "restart", Text: "Return", NextStep: "welcome"},
		},
		IsEndStep: true,
	},
	{
		ID:      "exit",
		Message: "Thank you for using eGain. We are looking forward to further discussion on the services.",
		Options: []domain.Option{
			{ID: "restart", Text: "Return", NextStep: "welcome"},
		},
		IsEndStep: true,
	},
}

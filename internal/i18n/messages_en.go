package i18n

// loadEnglishMessages loads all English translations.
func loadEnglishMessages() {
	messages[LangEN] = map[Key]string{
		// Errors
		KeyLLMError:             "Could not reach the model or load a response. Please try again later.",
		KeyLLMStreamInterrupted: "\n\nThe connection was interrupted. The answer above is incomplete. Please ask again for a full answer.",
		KeyUnexpectedError:      "An unexpected error occurred. Please try again later.",

		// Validation
		KeyEmptyInput:     "Please enter a message.",
		KeyInputTooLong:   "Message too long. Please keep it under %d characters.",
		KeySessionExpired: "Your session expired due to inactivity. Please refresh to continue.",
		KeyFillProfile: "Not enough information to build a roadmap. Tell me your learning goal, current level and time commitment " +
			"(e.g. I want to learn Python from scratch in 3 months, 1 hour a day).",

		// UI state
		KeyThinking: "Thinking...",

		// Profile
		KeyProfileAnalyzing: "Analyzing your information...",
		KeyProfileExtracted: "Profile extracted: goal %s, level %s, time commitment %s.",

		// Roadmap
		KeyRoadmapLoading:          "Building your learning roadmap...",
		KeyRoadmapCreated:          "Your roadmap is ready. Let's get learning!",
		KeyRoadmapError:            "Could not build a roadmap. Please try again.",
		KeyRoadmapInvalidJSON:      "The generated roadmap was not valid.",
		KeyRoadmapInvalidSchema:    "The generated roadmap has the wrong shape.",
		KeyRoadmapGenerationFailed: "Could not build a valid roadmap after several attempts. Please try again or adjust your learning details.",

		// CLI surface
		KeyAppName:      "LearnPath AI",
		KeyAppTagline:   "Your learning roadmap assistant",
		KeyWelcome:      "Welcome to LearnPath AI v%s",
		KeyWelcomeHelp:  "Type /reset to start a new session, Ctrl+D or /exit to quit",
		KeyGoodbye:      "Goodbye, happy learning!",
		KeyChatPrompt:   "You> ",
		KeyChatCleared:  "Chat history cleared. A new session has started.",
		KeyRoadmapWeek:  "Week %d: %s",
		KeyRoadmapTitle: "Roadmap: %s (%d weeks)",
	}
}

package i18n

// loadVietnameseMessages loads all Vietnamese translations.
// Vietnamese is the product language; this table is the reference set.
func loadVietnameseMessages() {
	messages[LangVI] = map[Key]string{
		// Errors
		KeyLLMError:             "Không thể kết nối hoặc tải tin nhắn. Vui lòng thử lại sau.",
		KeyLLMStreamInterrupted: "\n\nKết nối bị gián đoạn. Câu trả lời phía trên chưa hoàn chỉnh. Vui lòng hỏi lại để nhận câu trả lời đầy đủ.",
		KeyUnexpectedError:      "Đã xảy ra lỗi không mong muốn. Vui lòng thử lại sau.",

		// Validation
		KeyEmptyInput:     "Vui lòng nhập nội dung tin nhắn.",
		KeyInputTooLong:   "Tin nhắn quá dài. Vui lòng giới hạn trong %d kí tự.",
		KeySessionExpired: "Phiên làm việc đã hết hạn do không hoạt động. Vui lòng làm mới trang để tiếp tục.",
		KeyFillProfile: "Chưa đủ thông tin để tạo lộ trình. Hãy cho biết mục tiêu học tập, trình độ và thời gian học tập " +
			"(vd: Tôi muốn học Python từ đầu trong 3 tháng, mỗi ngày 1 giờ).",

		// UI state
		KeyThinking: "Đang suy nghĩ...",

		// Profile
		KeyProfileAnalyzing: "Đang phân tích thông tin...",
		KeyProfileExtracted: "Đã trích xuất thông tin hồ sơ: mục tiêu %s, trình độ %s, thời gian học %s.",

		// Roadmap
		KeyRoadmapLoading:          "Đang tạo lộ trình học tập...",
		KeyRoadmapCreated:          "Lộ trình đã sẵn sàng. Bắt đầu học tập nào!",
		KeyRoadmapError:            "Không thể tạo lộ trình. Vui lòng thử lại.",
		KeyRoadmapInvalidJSON:      "Lộ trình nhận được không hợp lệ.",
		KeyRoadmapInvalidSchema:    "Lộ trình không đúng định dạng.",
		KeyRoadmapGenerationFailed: "Không thể tạo lộ trình học tập sau nhiều lần thử. Vui lòng thử lại hoặc điều chỉnh thông tin học tập.",

		// CLI surface
		KeyAppName:      "LearnPath AI",
		KeyAppTagline:   "Trợ lý lộ trình học tập của bạn",
		KeyWelcome:      "Chào mừng đến với LearnPath AI v%s",
		KeyWelcomeHelp:  "Gõ /reset để bắt đầu phiên mới, Ctrl+D hoặc /exit để thoát",
		KeyGoodbye:      "Tạm biệt! Chúc bạn học tốt!",
		KeyChatPrompt:   "Bạn> ",
		KeyChatCleared:  "Đã xoá lịch sử trò chuyện. Phiên mới bắt đầu.",
		KeyRoadmapWeek:  "Tuần %d: %s",
		KeyRoadmapTitle: "Lộ trình: %s (%d tuần)",
	}
}

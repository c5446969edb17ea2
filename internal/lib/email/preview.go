package email

// PreviewData contains sample data for every template, keyed by template name.
// Tests render each template with it.
var PreviewData = map[Template]map[string]string{
	TemplateParcelCreated: {
		"ParcelID":           "42",
		"TrackingNumber":     "TH0123456789",
		"Status":             "Pending",
		"SenderName":         "สมชาย ใจดี",
		"RecipientName":      "สมหญิง รักสงบ",
		"Province":           "เชียงใหม่",
		"Region":             "ภาคเหนือ",
		"DistributionCenter": "ศูนย์กระจายสินค้าภาคเหนือ (เชียงใหม่)",
	},
}

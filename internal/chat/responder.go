package chat

import "strings"

// Scripted keyword lookup. No learning, no external calls: the first rule
// whose keyword appears in the lowercased message wins.

type rule struct {
	keywords []string
	reply    string
}

var rules = []rule{
	{
		keywords: []string{"merhaba", "selam", "hello"},
		reply:    "Merhaba! KiraTakip asistanına hoş geldiniz. Size nasıl yardımcı olabilirim?",
	},
	{
		keywords: []string{"ödeme", "odeme", "payment"},
		reply:    "Ödemelerinizi Ödemeler sayfasından takip edebilirsiniz. Bekleyen ve geciken ödemeler panelde listelenir.",
	},
	{
		keywords: []string{"sözleşme", "sozlesme", "kontrat"},
		reply:    "Sözleşmelerinizi Sözleşmeler sayfasından görüntüleyebilir, yeni sözleşme ekleyebilirsiniz.",
	},
	{
		keywords: []string{"kiracı", "kiraci"},
		reply:    "Kiracı bilgilerini Kiracılar sayfasından ekleyebilir ve güncelleyebilirsiniz.",
	},
	{
		keywords: []string{"depozito"},
		reply:    "Depozito tutarları sözleşme kaydında saklanır ve mülk detayında görüntülenir.",
	},
	{
		keywords: []string{"emlak", "mülk", "mulk", "daire"},
		reply:    "Mülklerinizi Mülkler sayfasından yönetebilirsiniz. Boş mülkler panelde işaretlenir.",
	},
	{
		keywords: []string{"kira", "rent"},
		reply:    "Kira takibi için mülk ve sözleşme kayıtlarınızı güncel tutmanız yeterli; aylık gelir panelde hesaplanır.",
	},
	{
		keywords: []string{"teşekkür", "tesekkur", "sağol", "sagol"},
		reply:    "Rica ederim! Başka bir sorunuz olursa buradayım.",
	},
}

const defaultReply = "Bu konuda yardımcı olabilmem için sorunuzu biraz daha açar mısınız? Dilerseniz destek talebi de oluşturabilirsiniz."

const supportAck = "Destek talebiniz alındı. Ekibimiz en kısa sürede sizinle iletişime geçecek."

// Respond returns the canned reply for a user message.
func Respond(message string) string {
	lowered := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.reply
			}
		}
	}
	return defaultReply
}

package redirect

// DefaultRules is the legacy URL table of the site.
// Every historic slug is listed literally; the site root is the only temporary redirect.
func DefaultRules() []Rule {
	return []Rule{
		{Source: "/", Destination: "/tr", Permanent: false},

		// corporate
		{Source: "/hakkimizda", Destination: "/tr/kurumsal/hakkimizda", Permanent: true},
		{Source: "/kurumsal", Destination: "/tr/kurumsal/hakkimizda", Permanent: true},
		{Source: "/vizyon_misyon", Destination: "/tr/kurumsal/vizyon-misyon", Permanent: true},
		{Source: "/vizyonumuz", Destination: "/tr/kurumsal/vizyon-misyon", Permanent: true},
		{Source: "/tarihce", Destination: "/tr/kurumsal/tarihce", Permanent: true},
		{Source: "/tarihcemiz", Destination: "/tr/kurumsal/tarihce", Permanent: true},
		{Source: "/yonetim_kurulu", Destination: "/tr/kurumsal/yonetim-kurulu", Permanent: true},
		{Source: "/kalite_politikamiz", Destination: "/tr/kurumsal/kalite-politikamiz", Permanent: true},
		{Source: "/sertifikalarimiz", Destination: "/tr/kurumsal/sertifikalar", Permanent: true},
		{Source: "/about-us", Destination: "/en/corporate/about-us", Permanent: true},
		{Source: "/about_us", Destination: "/en/corporate/about-us", Permanent: true},
		{Source: "/en/about_us", Destination: "/en/corporate/about-us", Permanent: true},
		{Source: "/en/vision_mission", Destination: "/en/corporate/vision-mission", Permanent: true},
		{Source: "/en/history", Destination: "/en/corporate/history", Permanent: true},
		{Source: "/en/board_of_directors", Destination: "/en/corporate/board-of-directors", Permanent: true},
		{Source: "/en/quality_policy", Destination: "/en/corporate/quality-policy", Permanent: true},

		// careers
		{Source: "/kariyer", Destination: "/tr/kariyer", Permanent: true},
		{Source: "/insan_kaynaklari", Destination: "/tr/kariyer", Permanent: true},
		{Source: "/insan_kaynaklari_politikamiz", Destination: "/tr/kariyer/insan-kaynaklari-politikamiz", Permanent: true},
		{Source: "/is_basvuru_formu", Destination: "/tr/kariyer/basvuru", Permanent: true},
		{Source: "/acik_pozisyonlar", Destination: "/tr/kariyer/acik-pozisyonlar", Permanent: true},
		{Source: "/careers", Destination: "/en/careers", Permanent: true},
		{Source: "/en/human_resources", Destination: "/en/careers", Permanent: true},
		{Source: "/en/human_resources_policy", Destination: "/en/careers/human-resources-policy", Permanent: true},
		{Source: "/en/job_application_form", Destination: "/en/careers/apply", Permanent: true},

		// brands and products
		{Source: "/markalarimiz", Destination: "/tr/markalar", Permanent: true},
		{Source: "/markalar", Destination: "/tr/markalar", Permanent: true},
		{Source: "/urunlerimiz", Destination: "/tr/markalar", Permanent: true},
		{Source: "/katalog", Destination: "/tr/katalog", Permanent: true},
		{Source: "/e_katalog", Destination: "/tr/katalog", Permanent: true},
		{Source: "/brands", Destination: "/en/brands", Permanent: true},
		{Source: "/en/our_brands", Destination: "/en/brands", Permanent: true},
		{Source: "/en/products", Destination: "/en/brands", Permanent: true},
		{Source: "/en/e_catalogue", Destination: "/en/catalogue", Permanent: true},

		// media
		{Source: "/basin_odasi", Destination: "/tr/medya/basin-odasi", Permanent: true},
		{Source: "/haberler", Destination: "/tr/medya/haberler", Permanent: true},
		{Source: "/duyurular", Destination: "/tr/medya/haberler", Permanent: true},
		{Source: "/en/press_room", Destination: "/en/media/press-room", Permanent: true},
		{Source: "/en/news", Destination: "/en/media/news", Permanent: true},

		// sustainability
		{Source: "/surdurulebilirlik", Destination: "/tr/surdurulebilirlik", Permanent: true},
		{Source: "/sosyal_sorumluluk", Destination: "/tr/surdurulebilirlik", Permanent: true},
		{Source: "/en/social_responsibility", Destination: "/en/sustainability", Permanent: true},

		// contact
		{Source: "/iletisim", Destination: "/tr/iletisim", Permanent: true},
		{Source: "/bize_ulasin", Destination: "/tr/iletisim", Permanent: true},
		{Source: "/contact", Destination: "/en/contact", Permanent: true},
		{Source: "/contact_us", Destination: "/en/contact", Permanent: true},

		// legal
		{Source: "/kvkk", Destination: "/tr/kvkk", Permanent: true},
		{Source: "/kvkk_aydinlatma_metni", Destination: "/tr/kvkk", Permanent: true},
		{Source: "/gizlilik_politikasi", Destination: "/tr/gizlilik-politikasi", Permanent: true},
		{Source: "/cerez_politikasi", Destination: "/tr/cerez-politikasi", Permanent: true},
		{Source: "/en/privacy_policy", Destination: "/en/privacy-policy", Permanent: true},
		{Source: "/en/cookie_policy", Destination: "/en/cookie-policy", Permanent: true},
		{Source: "/en/personal_data_protection", Destination: "/en/personal-data-protection", Permanent: true},
	}
}

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"authorsite-backend/internal/config"
	"authorsite-backend/internal/domains/award"
	awardRepo "authorsite-backend/internal/domains/award/repository"
	"authorsite-backend/internal/domains/book"
	bookRepo "authorsite-backend/internal/domains/book/repository"
	"authorsite-backend/internal/domains/work"
	workRepo "authorsite-backend/internal/domains/work/repository"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/pkg/logger"
)

// Seeds the database with the site's launch content. Destructive: existing
// works, books and awards are wiped first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️  No .env file found, using system environment variables")
	}
	logger.Init("development")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to load database config")
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to connect to database")
	}
	defer db.Close()

	if _, err := db.Pool.Exec(ctx, `TRUNCATE works, books, awards`); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to clear existing content")
	}

	works := workRepo.NewPostgresRepository(db.Pool)
	books := bookRepo.NewPostgresRepository(db.Pool)
	awards := awardRepo.NewPostgresRepository(db.Pool)

	for _, req := range sampleWorks() {
		w := req.ToWork()
		if err := works.Create(ctx, w); err != nil {
			log.Fatal().Err(err).Str("title", w.Title).Msg("❌ Failed to seed work")
		}
	}
	log.Info().Int("count", len(sampleWorks())).Msg("✅ Works seeded")

	for _, req := range sampleBooks() {
		b := req.ToBook()
		if err := books.Create(ctx, b); err != nil {
			log.Fatal().Err(err).Str("title", b.Title).Msg("❌ Failed to seed book")
		}
	}
	log.Info().Int("count", len(sampleBooks())).Msg("✅ Books seeded")

	for _, req := range sampleAwards() {
		a := req.ToAward()
		if err := awards.Create(ctx, a); err != nil {
			log.Fatal().Err(err).Str("title", a.Title).Msg("❌ Failed to seed award")
		}
	}
	log.Info().Int("count", len(sampleAwards())).Msg("✅ Awards seeded")

	log.Info().Msg("🎉 Seeding complete")
}

func sampleWorks() []work.CreateWorkRequest {
	return []work.CreateWorkRequest{
		{
			Title: "समझ सको तो अर्थ हूँ, ना समझो तो व्यर्थ हूँ",
			Content: "समझ सको तो अर्थ हूँ,\nना समझो तो व्यर्थ हूँ।\n\n" +
				"शब्दों के पीछे छुपा हूँ,\nभावों में बसा हूँ।\n" +
				"जो पढ़ले दिल से मुझे,\nउसकी आँखों में बसा हूँ।\n\n" +
				"ना समझो तो बस अक्षर हूँ,\nसमझ लो तो संसार हूँ।",
			Excerpt:  "शब्दों के पीछे छुपे अर्थ और भावनाओं की गहन अभिव्यक्ति।",
			Category: "poem",
			Tags:     []string{"आत्मचिंतन", "अर्थ", "जीवन"},
			Language: "hindi",
			Status:   "published",
			Featured: true,
		},
		{
			Title: "ये मेरी और मेरे मालिक की अंतरंग गफ़्तगू है",
			Content: "ये मेरी और मेरे मालिक की अंतरंग गफ़्तगू है,\nईश्वर और आत्मा के बीच की बातचीत।\n\n" +
				"जब मैं चुप होती हूँ,\nतब वो बोलते हैं।\n" +
				"जब मैं रोती हूँ,\nतब वो मुस्कुराते हैं।\n\n" +
				"ये गफ़्तगू शब्दों से परे है,\nये दिल और रूह की बात है।",
			Excerpt:  "ईश्वर और आत्मा के बीच की अंतरंग बातचीत।",
			Category: "poem",
			Tags:     []string{"आध्यात्मिक", "ईश्वर", "आत्मा"},
			Language: "hindi",
			Status:   "published",
			Featured: true,
		},
		{
			Title: "अब तू अंधकार का आभार व्यक्त कर",
			Content: "अब तू अंधकार का आभार व्यक्त कर,\nक्योंकि उसी ने तुझे प्रकाश की कीमत सिखाई।\n\n" +
				"रात के गर्भ से ही तो,\nसुबह ने जन्म लिया।\n" +
				"आँसुओं की नदी से ही तो,\nमुस्कान ने किनारा पाया।\n\n" +
				"अंधेरा तेरा दुश्मन नहीं,\nवो तेरा गुरु है।",
			Excerpt:  "अंधकार से प्रकाश की ओर - दर्द को कृतज्ञता में बदलने की कला।",
			Category: "poem",
			Tags:     []string{"अंधकार", "प्रकाश", "आध्यात्मिक"},
			Language: "hindi",
			Status:   "published",
			Featured: true,
		},
		{
			Title: "फिर तुम्हारी हर एक बात में दम है",
			Content: "फिर तुम्हारी हर एक बात में दम है,\nतुम्हारे शब्दों में जादू है।\n\n" +
				"हर बात में सच्चाई,\nहर शब्द में गहराई।\n" +
				"तुम बोलो तो दुनिया सुने,\nतुम लिखो तो दिल भर जाए।",
			Excerpt:  "प्रेम, विश्वास और शब्दों की शक्ति पर मार्मिक कविता।",
			Category: "poem",
			Tags:     []string{"प्रेम", "विश्वास", "शब्द"},
			Language: "hindi",
			Status:   "published",
		},
	}
}

func sampleBooks() []book.CreateBookRequest {
	return []book.CreateBookRequest{
		{
			Title:           "समझ सको तो अर्थ हूँ, ना समझो तो व्यर्थ हूँ",
			Description:     "पहला काव्य संग्रह, 21st Century Emily Dickinson Award के लिए नामांकित। शब्दों के माध्यम से जीवन के अर्थ और व्यर्थ की गहन खोज।",
			PurchaseLink:    "https://www.amazon.in/dp/9363303624",
			Genre:           "Poetry",
			PublicationYear: 2023,
			Language:        "hindi",
			Featured:        true,
		},
		{
			Title:           "ये मेरी और मेरे मालिक की अंतरंग गफ़्तगू है",
			Description:     "Emily Dickinson Award विजेता काव्य संग्रह। ईश्वर और आत्मा के बीच की अंतरंग बातचीत।",
			PurchaseLink:    "https://www.amazon.in/dp/9367390793",
			Genre:           "Poetry",
			PublicationYear: 2023,
			Language:        "hindi",
			Featured:        true,
		},
		{
			Title:           "अब तू अंधकार का आभार व्यक्त कर",
			Description:     "Emily Dickinson Award विजेता। अंधकार से प्रकाश की ओर की यात्रा।",
			PurchaseLink:    "https://www.amazon.in/Manisha-keshav/dp/9369546863",
			Genre:           "Poetry",
			PublicationYear: 2024,
			Language:        "hindi",
			Featured:        true,
		},
		{
			Title:           "The Serpent's Embrace",
			Description:     "A mythological thriller and science fiction series. A gripping narrative that weaves ancient myths with futuristic science.",
			PurchaseLink:    "https://www.amazon.in/s?k=serpents+embrace",
			Genre:           "Mythological Thriller & Science Fiction",
			PublicationYear: 2025,
			Language:        "english",
			Featured:        true,
		},
	}
}

func sampleAwards() []award.CreateAwardRequest {
	return []award.CreateAwardRequest{
		{
			Title:       "7 Time Emily Dickinson Award Winner",
			IssuingBody: "Bookleaf Publishing",
			Year:        2025,
			Description: "Honored seven times with the Emily Dickinson Award for outstanding contributions to poetry.",
		},
		{
			Title:       "21st Century Emily Dickinson Award Nomination",
			IssuingBody: "Bookleaf Publishing",
			Year:        2023,
			Description: "Nominated for the 21st Century Emily Dickinson Award, recognizing exceptional poetic talent.",
		},
		{
			Title:       "Featured in The Writer Magazine",
			IssuingBody: "The Writer Magazine",
			Year:        2024,
			Description: "Recognition for outstanding literary achievements and contributions to contemporary Hindi and English poetry.",
		},
	}
}

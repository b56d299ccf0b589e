package commands

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"bookstore-api/initializers"
	"bookstore-api/internals/models"
	logger "bookstore-api/loggers"
)

func strp(s string) *string { return &s }

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return seedData(initializers.DB)
	},
}

func seedData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Logger.Warn("database already contains data, run 'drop' and 'migrate' first")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		authorNames := []models.Name{
			{FirstName: "Brandon", LastName: strp("Sanderson")},
			{FirstName: "Robert", LastName: strp("Jordan")},
			{FirstName: "Mark", LastName: strp("Lawrence")},
			{FirstName: "Patrick", LastName: strp("Rothfuss")},
			{FirstName: "Terry", LastName: strp("Pratchett")},
			{FirstName: "Neil", LastName: strp("Gaiman")},
		}
		if err := tx.Create(&authorNames).Error; err != nil {
			return err
		}

		authors := make([]models.Author, len(authorNames))
		for i := range authorNames {
			authors[i] = models.Author{NameID: authorNames[i].ID}
		}
		if err := tx.Omit("Name").Create(&authors).Error; err != nil {
			return err
		}

		stormlight := strp("The Stormlight Archive")
		wheel := strp("The Wheel of Time")
		kingkiller := strp("The Kingkiller Chronicle")
		broken := strp("Broken Empire")
		books := []models.Book{
			{ISBN: "9780765326355", Series: stormlight, Title: "The Way of Kings", PublicationYear: 2010, Price: 29.99, Quantity: 10},
			{ISBN: "9780765326362", Series: stormlight, Title: "Words of Radiance", PublicationYear: 2014, Price: 29.99, Quantity: 10},
			{ISBN: "9780765326379", Series: stormlight, Title: "Oathbringer", PublicationYear: 2017, Price: 29.99, Quantity: 10},
			{ISBN: "9780312850098", Series: wheel, Title: "The Eye of the World", PublicationYear: 1990, Price: 19.99, Quantity: 10},
			{ISBN: "9780312851408", Series: wheel, Title: "The Great Hunt", PublicationYear: 1990, Price: 19.99, Quantity: 10},
			{ISBN: "9780312852481", Series: wheel, Title: "The Dragon Reborn", PublicationYear: 1991, Price: 19.99, Quantity: 10},
			{ISBN: "9780312854317", Series: wheel, Title: "The Shadow Rising", PublicationYear: 1992, Price: 19.99, Quantity: 10},
			{ISBN: "9780312854270", Series: wheel, Title: "The Fires of Heaven", PublicationYear: 1993, Price: 19.99, Quantity: 10},
			{ISBN: "9780312854287", Series: wheel, Title: "Lord of Chaos", PublicationYear: 1994, Price: 19.99, Quantity: 10},
			{ISBN: "9780312857677", Series: wheel, Title: "A Crown of Swords", PublicationYear: 1996, Price: 19.99, Quantity: 10},
			{ISBN: "9780312857691", Series: wheel, Title: "The Path of Daggers", PublicationYear: 1998, Price: 19.99, Quantity: 10},
			{ISBN: "9780312864255", Series: wheel, Title: "Winter's Heart", PublicationYear: 2000, Price: 19.99, Quantity: 10},
			{ISBN: "9780312864590", Series: wheel, Title: "Crossroads of Twilight", PublicationYear: 2003, Price: 19.99, Quantity: 10},
			{ISBN: "9780312873073", Series: wheel, Title: "Knife of Dreams", PublicationYear: 2005, Price: 19.99, Quantity: 10},
			{ISBN: "9780765302304", Series: wheel, Title: "The Gathering Storm", PublicationYear: 2009, Price: 19.99, Quantity: 10},
			{ISBN: "9780765325945", Series: wheel, Title: "Towers of Midnight", PublicationYear: 2010, Price: 19.99, Quantity: 10},
			{ISBN: "9780765325952", Series: wheel, Title: "A Memory of Light", PublicationYear: 2013, Price: 19.99, Quantity: 10},
			{ISBN: "9780756405892", Series: kingkiller, Title: "The Name of the Wind", PublicationYear: 2007, Price: 14.99, Quantity: 10},
			{ISBN: "9780756407124", Series: kingkiller, Title: "The Wise Man's Fear", PublicationYear: 2011, Price: 14.99, Quantity: 10},
			{ISBN: "9780060853976", Title: "Good Omens: The Nice and Accurate Prophecies of Agnes Nutter, Witch", PublicationYear: 1990, Price: 12.99, Quantity: 10},
			{ISBN: "9780007423293", Series: broken, Title: "Prince of Thorns", PublicationYear: 2011, Price: 14.99, Quantity: 10},
			{ISBN: "9781937007478", Series: broken, Title: "King of Thorns", PublicationYear: 2012, Price: 14.99, Quantity: 10},
			{ISBN: "9780425256855", Series: broken, Title: "Emperor of Thorns", PublicationYear: 2013, Price: 14.99, Quantity: 10},
		}
		if err := tx.Omit("BookAuthors", "OrderItems").Create(&books).Error; err != nil {
			return err
		}

		// book index -> author indexes
		bookAuthorLinks := map[int][]int{
			0: {0}, 1: {0}, 2: {0},
			3: {1}, 4: {1}, 5: {1}, 6: {1}, 7: {1}, 8: {1}, 9: {1},
			10: {1}, 11: {1}, 12: {1}, 13: {1},
			14: {1, 0}, 15: {1, 0}, 16: {1, 0},
			17: {3}, 18: {3},
			19: {4, 5},
			20: {2}, 21: {2}, 22: {2},
		}
		var junctions []models.BookAuthor
		for bookIdx, authorIdxs := range bookAuthorLinks {
			for _, authorIdx := range authorIdxs {
				junctions = append(junctions, models.BookAuthor{
					BookID:   books[bookIdx].ID,
					AuthorID: authors[authorIdx].ID,
				})
			}
		}
		if err := tx.Omit("Book", "Author").Create(&junctions).Error; err != nil {
			return err
		}

		addresses := []models.Address{
			{CountryCode: "US", StateCode: "CA", City: strp("San Francisco"), Street: "123 Market St", Postcode: "94103"},
			{CountryCode: "US", StateCode: "NY", City: strp("New York"), Street: "456 Broadway", Postcode: "10001"},
			{CountryCode: "GB", StateCode: "ENG", City: strp("London"), Street: "789 Oxford St", Postcode: "W1D2LT"},
			{CountryCode: "CA", StateCode: "ON", City: strp("Toronto"), Street: "101 Queen St W", Postcode: "M5H2N2"},
			{CountryCode: "AU", StateCode: "NSW", City: strp("Sydney"), Street: "202 George St", Postcode: "2000"},
			{CountryCode: "DE", StateCode: "BE", City: strp("Berlin"), Street: "303 Unter den Linden", Postcode: "10117"},
		}
		if err := tx.Create(&addresses).Error; err != nil {
			return err
		}

		customerNames := []models.Name{
			{FirstName: "Alice", LastName: strp("Smith")},
			{FirstName: "Bob", LastName: strp("Johnson")},
			{FirstName: "Charlie", LastName: strp("Brown")},
			{FirstName: "David", LastName: strp("Williams")},
			{FirstName: "Eve", LastName: strp("Davis")},
			{FirstName: "Frank", LastName: strp("Miller")},
			{FirstName: "Grace", LastName: strp("Wilson")},
		}
		if err := tx.Create(&customerNames).Error; err != nil {
			return err
		}

		customers := []models.Customer{
			{NameID: customerNames[0].ID, Email: "alice.smith@example.com", Phone: strp("+61412345678"), AddressID: &addresses[0].ID},
			{NameID: customerNames[1].ID, Email: "bob.johnson@example.com", AddressID: &addresses[1].ID},
			{NameID: customerNames[2].ID, Email: "charlie.brown@example.com", Phone: strp("+61412345679"), AddressID: &addresses[2].ID},
			{NameID: customerNames[3].ID, Email: "david.williams@example.com", Phone: strp("+61412345671"), AddressID: &addresses[3].ID},
			{NameID: customerNames[4].ID, Email: "eve.davis@example.com", Phone: strp("+61412345672"), AddressID: &addresses[4].ID},
			{NameID: customerNames[5].ID, Email: "frank.miller@example.com", AddressID: &addresses[5].ID},
			{NameID: customerNames[6].ID, Email: "grace.wilson@example.com", Phone: strp("+61412345673"), AddressID: &addresses[4].ID},
		}
		if err := tx.Omit("Name", "Address").Create(&customers).Error; err != nil {
			return err
		}

		day := func(month time.Month, d, h, m, s int) time.Time {
			return time.Date(2025, month, d, h, m, s, 0, time.UTC)
		}
		orderSeeds := []struct {
			customer int
			date     time.Time
			items    [][2]int // book index, quantity
		}{
			{0, day(time.February, 1, 10, 15, 30), [][2]int{{0, 1}, {1, 1}}},
			{0, day(time.February, 1, 11, 10, 20), [][2]int{{3, 1}, {17, 1}, {19, 1}}},
			{1, day(time.February, 2, 11, 20, 45), [][2]int{{3, 2}, {4, 1}, {5, 1}}},
			{2, day(time.April, 3, 12, 25, 50), [][2]int{{17, 1}}},
			{3, day(time.May, 4, 13, 30, 55), [][2]int{{0, 1}, {19, 2}}},
			{4, day(time.June, 5, 14, 35, 0), [][2]int{{21, 1}}},
			{5, day(time.June, 6, 15, 40, 5), [][2]int{{0, 1}, {1, 1}, {2, 1}}},
			{5, day(time.June, 7, 16, 45, 10), [][2]int{{14, 1}, {15, 1}, {16, 1}}},
			{3, day(time.July, 3, 17, 50, 15), [][2]int{{18, 3}}},
			{2, day(time.July, 4, 18, 55, 20), [][2]int{{20, 1}, {21, 1}, {22, 1}}},
		}

		itemCount := 0
		for _, seed := range orderSeeds {
			var total float64
			for _, item := range seed.items {
				total += books[item[0]].Price * float64(item[1])
			}
			order := models.Order{
				CustomerID: customers[seed.customer].ID,
				OrderDate:  seed.date,
				PriceTotal: math.Round(total*100) / 100,
			}
			if err := tx.Omit("Customer", "OrderItems").Create(&order).Error; err != nil {
				return err
			}
			for _, item := range seed.items {
				orderItem := models.OrderItem{
					OrderID:  order.ID,
					BookID:   books[item[0]].ID,
					Quantity: item[1],
				}
				if err := tx.Omit("Book", "Order").Create(&orderItem).Error; err != nil {
					return err
				}
				itemCount++
			}
		}

		logger.Logger.WithFields(logrus.Fields{
			"books":       len(books),
			"authors":     len(authors),
			"customers":   len(customers),
			"orders":      len(orderSeeds),
			"order_items": itemCount,
		}).Info("database seeding complete")
		return nil
	})
}

package identity

import "time"

// account pairs a user with its password inside the mock database.
type account struct {
	User
	password    string
	testAccount bool
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedAccounts returns the test accounts available out of the box.
// Grades span 3 to 12 and languages cover English, Tagalog, Bisaya,
// Hiligaynon, and Ilocano so every learner profile can be exercised.
func seedAccounts() []*account {
	return []*account{
		{
			User: User{
				ID: "user-001", Email: "maria.santos@email.com",
				FirstName: "Maria", LastName: "Santos",
				Age: 14, Grade: 8, PreferredLanguage: "en",
				CreatedAt: date(2024, 1, 15), LastLoginAt: date(2024, 12, 1),
			},
			password: "student2024", testAccount: true,
		},
		{
			User: User{
				ID: "user-002", Email: "juan.dela.cruz@email.com",
				FirstName: "Juan", LastName: "Dela Cruz",
				Age: 16, Grade: 10, PreferredLanguage: "tl",
				CreatedAt: date(2024, 2, 20), LastLoginAt: date(2024, 11, 28),
			},
			password: "pinoy123", testAccount: true,
		},
		{
			User: User{
				ID: "user-003", Email: "ana.reyes@email.com",
				FirstName: "Ana", LastName: "Reyes",
				Age: 12, Grade: 6, PreferredLanguage: "en",
				CreatedAt: date(2024, 3, 10), LastLoginAt: date(2024, 12, 2),
			},
			password: "math2024", testAccount: true,
		},
		{
			User: User{
				ID: "user-004", Email: "carlos.garcia@email.com",
				FirstName: "Carlos", LastName: "Garcia",
				Age: 17, Grade: 11, PreferredLanguage: "bsy",
				CreatedAt: date(2024, 4, 5), LastLoginAt: date(2024, 11, 30),
			},
			password: "science123", testAccount: true,
		},
		{
			User: User{
				ID: "user-005", Email: "sofia.martinez@email.com",
				FirstName: "Sofia", LastName: "Martinez",
				Age: 13, Grade: 7, PreferredLanguage: "hlg",
				CreatedAt: date(2024, 5, 12), LastLoginAt: date(2024, 12, 1),
			},
			password: "reading2024", testAccount: true,
		},
		{
			User: User{
				ID: "user-006", Email: "miguel.torres@email.com",
				FirstName: "Miguel", LastName: "Torres",
				Age: 15, Grade: 9, PreferredLanguage: "il",
				CreatedAt: date(2024, 6, 18), LastLoginAt: date(2024, 11, 29),
			},
			password: "student456", testAccount: true,
		},
		{
			User: User{
				ID: "user-007", Email: "isabella.cruz@email.com",
				FirstName: "Isabella", LastName: "Cruz",
				Age: 18, Grade: 12, PreferredLanguage: "en",
				CreatedAt: date(2024, 7, 22), LastLoginAt: date(2024, 12, 2),
			},
			password: "pisa2024", testAccount: true,
		},
		{
			User: User{
				ID: "user-008", Email: "rafael.santos@email.com",
				FirstName: "Rafael", LastName: "Santos",
				Age: 11, Grade: 5, PreferredLanguage: "tl",
				CreatedAt: date(2024, 8, 14), LastLoginAt: date(2024, 11, 27),
			},
			password: "assessment123", testAccount: true,
		},
		{
			User: User{
				ID: "user-009", Email: "camila.rodriguez@email.com",
				FirstName: "Camila", LastName: "Rodriguez",
				Age: 10, Grade: 4, PreferredLanguage: "en",
				CreatedAt: date(2024, 9, 8), LastLoginAt: date(2024, 12, 1),
			},
			password: "skills2024", testAccount: true,
		},
		{
			User: User{
				ID: "user-010", Email: "diego.fernandez@email.com",
				FirstName: "Diego", LastName: "Fernandez",
				Age: 9, Grade: 3, PreferredLanguage: "bsy",
				CreatedAt: date(2024, 10, 3), LastLoginAt: date(2024, 11, 26),
			},
			password: "learning123", testAccount: true,
		},
	}
}

package domain

type Person struct {
	Model
	Name        string `db:"name"`
	Age         int    `db:"age"`
	Address     string `db:"address"`
	PhoneNumber string `db:"phone_number"`
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Philconrad24/Student-Management-System/app/config"
	"github.com/Philconrad24/Student-Management-System/app/database"
	"github.com/Philconrad24/Student-Management-System/app/models"
)

func main() {
	email := flag.String("email", "", "email address for the new account")
	password := flag.String("password", "", "password for the new account")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		fmt.Println("Usage: add_user -email ... -password ... -first-name ... -last-name ...")
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}

	user := &models.User{
		Email:     *email,
		Password:  *password,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}

package utils

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PromptYesNo asks the user a yes/no question on stdin and keeps asking
// until it gets a usable answer.
func PromptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s (y/n): ", question)
		response, _ := reader.ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))

		switch response {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Println("Please enter y or n")
		}
	}
}

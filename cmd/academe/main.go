// Academe is a command line classifier for academic email addresses
// and domains.

package main

func main() {
	Execute()
}

// Command ask asks the questions of a YAML questionnaire on the terminal and
// prints the answers as YAML.
package main

func main() {
	Execute()
}

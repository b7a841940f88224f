/*
Package dsl provides a fluent builder for constructing dialogue scripts in Go
instead of YAML. This is useful for dynamically generated scripts, unit tests,
and anywhere IDE type-checking beats editing a data file.

Example usage:

	b := dsl.New("welcome")

	b.Step("welcome").
		Message("Which product do you want to look into?").
		Option("ai-agent", "AI Agent", "ai-agent-resolution-input").
		Option("neither", "Neither", "exit")

	b.Step("ai-agent-resolution-input").
		Message("How many resolutions per month?").
		NumberInput()

	b.Step("resolution-cost-calculation").
		Message("Your Input: {userInput}\nTotal Monthly Cost: ${totalCost}").
		Restart("Return").
		End()

	b.Step("exit").
		Message("Thanks for stopping by.").
		Restart("Return").
		End()

Input prompt IDs are bound to the pricing calculator's dispatch table, so an
input step must use one of the known input step IDs and the script must
contain its result step.

	repo, err := b.Build()
	// ... pass repo to engine.New(...)
*/
package dsl

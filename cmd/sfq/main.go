// sfq is a command-line connector for extracting Salesforce SObject records
// into batch data pipelines. It validates temporal filter configuration,
// builds SOQL queries from SObject metadata and runs paged extractions.
package main

func main() {
	Execute()
}

// Package document reads the measuring stage's output and writes resolved
// results.
//
// A [Document] is the serialized element tree (JSON, or TOML when the file
// ends in .toml). [ReadDocumentFile] decodes and validates it, reporting
// every problem at once as a coded error from pkg/errors. [ToTree] and
// [ChainTable] turn a valid document into the inputs the resolvers take.
//
// A [Result] is the resolver output handed to the template renderer. It is
// always JSON:
//
//	res, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//		return err
//	}
//	return document.WriteResultFile(res, "checkout.anchors.json")
package document

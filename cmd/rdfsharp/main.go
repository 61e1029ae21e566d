package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/Magicianred/RDFSharp/rdf"
	"github.com/Magicianred/RDFSharp/rdf/codec"
	"github.com/Magicianred/RDFSharp/rdf/datatype"
	"github.com/Magicianred/RDFSharp/rdf/graph"
	"github.com/Magicianred/RDFSharp/rdf/query"
)

func main() {
	var filePath string
	var subjectIRI string
	var predicateIRI string
	var objectIRI string
	var literalValue string
	var help bool

	flag.StringVar(&filePath, "file", "", "N-Triples file to load")
	flag.StringVar(&subjectIRI, "subject", "", "bind the subject to an IRI")
	flag.StringVar(&predicateIRI, "predicate", "", "bind the predicate to an IRI")
	flag.StringVar(&objectIRI, "object", "", "bind the object to a resource IRI")
	flag.StringVar(&literalValue, "literal", "", "bind the object to a plain literal value")
	flag.BoolVar(&help, "h", false, "show help")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An in-memory RDF graph store with pattern selection and aggregation.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  # Run the built-in demo\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -file data.nt                    # Load a file, print all triples\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -file data.nt -predicate <IRI>   # Select triples by predicate\n", os.Args[0])
	}
	flag.Parse()

	if help {
		flag.Usage()
		os.Exit(0)
	}

	if filePath == "" {
		runDemo()
		return
	}

	f, err := os.Open(filePath)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer f.Close()

	g, err := codec.Deserialize(codec.NTriples, f)
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", filePath, err)
	}
	color.Green("Loaded %d triples from %s", g.Len(), filePath)

	var subject, predicate, object *rdf.Resource
	var literal *rdf.Literal
	if subjectIRI != "" {
		if subject, err = rdf.NewResource(subjectIRI); err != nil {
			log.Fatalf("Bad subject: %v", err)
		}
	}
	if predicateIRI != "" {
		if predicate, err = rdf.NewResource(predicateIRI); err != nil {
			log.Fatalf("Bad predicate: %v", err)
		}
	}
	if objectIRI != "" {
		if object, err = rdf.NewResource(objectIRI); err != nil {
			log.Fatalf("Bad object: %v", err)
		}
	}
	if literalValue != "" {
		literal = rdf.NewPlainLiteral(literalValue)
	}

	results, err := graph.SelectTriples(g, subject, predicate, object, literal)
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	for _, t := range results {
		fmt.Println(t)
	}
	color.Cyan("%d matching triples", len(results))
}

// runDemo builds a small graph and walks through selection, collection
// reconstruction, VALUES binding and grouped aggregation.
func runDemo() {
	color.Cyan("=== RDFSharp Demo ===")

	g := graph.NewGraph()

	ex := "http://example.org/"
	name := rdf.MustResource(ex + "name")
	city := rdf.MustResource(ex + "city")
	age := rdf.MustResource(ex + "age")

	people := []struct {
		id   string
		name string
		city string
		age  string
	}{
		{"alice", "Alice", "New York", "30"},
		{"bob", "Bob", "Boston", "25"},
		{"carol", "Carol", "New York", "35"},
	}

	for _, p := range people {
		person := rdf.MustResource(ex + p.id)
		nameLit := rdf.NewPlainLiteral(p.name)
		cityLit := rdf.NewPlainLiteral(p.city)
		ageLit, err := rdf.NewTypedLiteral(p.age, datatype.XSDInteger)
		if err != nil {
			log.Fatalf("Bad demo literal: %v", err)
		}
		for _, t := range []struct {
			p *rdf.Resource
			o rdf.Term
		}{{name, nameLit}, {city, cityLit}, {age, ageLit}} {
			triple, err := rdf.NewTriple(person, t.p, t.o)
			if err != nil {
				log.Fatalf("Bad demo triple: %v", err)
			}
			if err := g.AddTriple(triple); err != nil {
				log.Fatalf("Insert failed: %v", err)
			}
		}
	}
	color.Green("Built a graph with %d triples", g.Len())

	fmt.Println("\nTriples with predicate <" + ex + "city>:")
	results, err := graph.SelectTriples(g, nil, city, nil, nil)
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	for _, t := range results {
		fmt.Println("  ", t)
	}

	fmt.Println("\nAn RDF list, reified and read back:")
	items := []rdf.Term{
		rdf.NewPlainLiteral("first"),
		rdf.NewPlainLiteral("second"),
		rdf.NewPlainLiteral("third"),
	}
	rep, err := graph.ReifyCollection(g, items)
	if err != nil {
		log.Fatalf("Reify failed: %v", err)
	}
	readBack, err := graph.DeserializeCollection(g, rep, graph.DetectCollectionFlavor(g, rep))
	if err != nil {
		log.Fatalf("Deserialize failed: %v", err)
	}
	for i, item := range readBack {
		fmt.Printf("  %d: %s\n", i, item)
	}

	fmt.Println("\nVALUES binding with an UNDEF gap:")
	values := query.NewValues().
		AddBindings("person", []rdf.Term{
			rdf.MustResource(ex + "alice"),
			nil,
			rdf.MustResource(ex + "carol"),
		}).
		AddBindings("city", []rdf.Term{
			rdf.NewPlainLiteral("New York"),
		})
	fmt.Println(query.TableString(values.Materialize()))

	fmt.Println("Grouped aggregation (sum and count of age by city):")
	solutions := query.NewSolutionTable("city", "age")
	for _, p := range people {
		ageLit, _ := rdf.NewTypedLiteral(p.age, datatype.XSDInteger)
		if err := solutions.AddRow([]rdf.Term{rdf.NewPlainLiteral(p.city), ageLit}); err != nil {
			log.Fatalf("Row failed: %v", err)
		}
	}
	aggregated, err := query.ApplyAggregators(solutions, []string{"city"}, []*query.Aggregator{
		{Kind: query.Sum, InputVariable: "age", OutputVariable: "totalAge"},
		{Kind: query.Count, InputVariable: "age", OutputVariable: "people"},
	})
	if err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}
	fmt.Println(query.TableString(aggregated))
}

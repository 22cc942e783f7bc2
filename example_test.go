package genovec_test

import (
	"context"
	"fmt"
	"log"

	genovec "github.com/hupe1980/genovec"
	"github.com/hupe1980/genovec/cache"
	"github.com/hupe1980/genovec/landmark"
	"github.com/hupe1980/genovec/sketch"
)

func Example() {
	resolver := sketch.StaticResolver{
		"s__Escherichia coli":    sketch.FromFingerprints([]uint64{0x1234, 0xBEEF, 0xCAFE}),
		"s__Salmonella enterica": sketch.FromFingerprints([]uint64{0x1234, 0xBEEF, 0xF00D}),
		"s__Bacillus subtilis":   sketch.FromFingerprints([]uint64{0xAAAA, 0xBBBB, 0xCCCC}),
	}

	mem, err := cache.NewMemory(cache.DefaultMemoryEntries)
	if err != nil {
		log.Fatal(err)
	}

	pipeline := genovec.New(resolver, genovec.WithCache(mem))

	vectors, err := pipeline.Vectorize(context.Background(),
		[]string{"s__Escherichia coli", "s__Salmonella enterica"},
		genovec.FeatureHashing(1024),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(vectors), len(vectors[0]))
	// Output:
	// 2 1024
}

func ExamplePipeline_Vectorize_landmark() {
	resolver := sketch.StaticResolver{
		"query": sketch.FromFingerprints([]uint64{1, 2, 3, 4}),
		"ref-a": sketch.FromFingerprints([]uint64{1, 2, 3, 4}),
		"ref-b": sketch.FromFingerprints([]uint64{5, 6, 7, 8}),
	}

	set, err := landmark.NewSet("bacteria", []sketch.Sketch{
		resolver["ref-a"],
		resolver["ref-b"],
	})
	if err != nil {
		log.Fatal(err)
	}

	pipeline := genovec.New(resolver,
		genovec.WithLandmarkProvider(landmark.StaticProvider{"bacteria": set}),
	)

	vectors, err := pipeline.Vectorize(context.Background(),
		[]string{"query"}, genovec.Landmark("bacteria"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.1f\n", vectors[0])
	// Output:
	// [1.0 0.0]
}

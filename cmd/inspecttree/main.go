package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/justinchang1124/helices/internal/frame"
	"github.com/justinchang1124/helices/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene description YAML file")
	world := flag.Bool("world", false, "Print world placements instead of local")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspecttree -scene FILE [-world]")
		os.Exit(1)
	}

	doc, err := scene.Load(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	res, err := scene.NewBuilder(nil).Build(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Scene: %s (%d frames, %d roots)\n", doc.Name, res.Tree.Count(), len(res.Roots))
	fmt.Println("------------------------------------------------------------")

	for _, root := range res.Roots {
		res.Tree.Walk(root, func(h frame.Handle, depth int) {
			p := res.Tree.Local(h)
			if *world {
				p = res.Tree.World(h)
			}
			tag := ""
			if c := res.Tree.Content(h); c != nil {
				tag = "  [" + c.ContentID() + "]"
			} else if d := res.Tree.Display(h); d.Kind != "" {
				tag = fmt.Sprintf("  <%s %.3f>", d.Kind, d.Size)
			}
			fmt.Printf("%s%-24s pos=(%7.3f %7.3f %7.3f) rot=(%6.3f %6.3f %6.3f %6.3f)%s\n",
				strings.Repeat("  ", depth), res.Tree.Name(h),
				p.Pos[0], p.Pos[1], p.Pos[2],
				p.Rot.W, p.Rot.V[0], p.Rot.V[1], p.Rot.V[2], tag)
		})
		fmt.Println()
	}
}

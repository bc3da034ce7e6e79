package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bluegreyowl/gradebook/internal/models"
)

func printStudents(students []*models.Student) {
	if len(students) == 0 {
		fmt.Println("No student records found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROLL NO\tNAME\tAGE\tMARKS\tGRADE")
	for _, student := range students {
		fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%s\n",
			student.RollNumber, student.Name, student.Age, student.Marks, student.Grade)
	}
	w.Flush()
	fmt.Printf("\nTotal students: %d\n", len(students))
}

func printStudent(student *models.Student) {
	printStudents([]*models.Student{student})
}

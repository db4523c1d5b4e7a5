// Package stats computes aggregate statistics over a list of blogs.
// All functions are pure and treat the input slice as read-only.
package stats

import "github.com/stefhagen/bloglist-api/internal/domain"

// AuthorBlogs names an author together with how many blogs they have.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes names an author together with their accumulated likes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes sums the likes across all blogs.
func TotalLikes(blogs []*domain.Blog) int {
	total := 0
	for _, blog := range blogs {
		total += blog.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// list. Ties resolve to the earliest blog in the list.
func FavoriteBlog(blogs []*domain.Blog) *domain.Blog {
	var favorite *domain.Blog
	for _, blog := range blogs {
		if favorite == nil || blog.Likes > favorite.Likes {
			favorite = blog
		}
	}
	return favorite
}

// MostBlogs returns the author with the largest number of blogs, or nil for
// an empty list. Ties resolve to the author first reaching the count.
func MostBlogs(blogs []*domain.Blog) *AuthorBlogs {
	counts := make(map[string]int)
	var top *AuthorBlogs
	for _, blog := range blogs {
		counts[blog.Author]++
		if top == nil || counts[blog.Author] > top.Blogs {
			top = &AuthorBlogs{Author: blog.Author, Blogs: counts[blog.Author]}
		}
	}
	return top
}

// MostLikes returns the author with the largest accumulated like total, or
// nil for an empty list. Ties resolve to the author first reaching the total.
func MostLikes(blogs []*domain.Blog) *AuthorLikes {
	totals := make(map[string]int)
	var top *AuthorLikes
	for _, blog := range blogs {
		totals[blog.Author] += blog.Likes
		if top == nil || totals[blog.Author] > top.Likes {
			top = &AuthorLikes{Author: blog.Author, Likes: totals[blog.Author]}
		}
	}
	return top
}

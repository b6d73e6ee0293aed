// Package memdb is an in-memory db.Database used by tests and local runs.
// It mirrors the Firestore implementation's semantics: lookups return
// (nil, nil) on missing documents, writes are last-write-wins per document,
// and list queries match the equality/array-membership contract.
package memdb

import (
	"context"
	"fmt"
	"sort"
	"sync"

	appdb "github.com/recnet/recnet-be/db"
	"github.com/recnet/recnet-be/model"
)

type MemDB struct {
	mu          sync.RWMutex
	users       map[string]*model.User
	communities map[string]*model.Community
	posts       map[string]*model.Post
	comments    map[string]*model.Comment
	votes       map[string]*model.Vote
}

var _ appdb.Database = (*MemDB)(nil)

func NewDatabase() *MemDB {
	return &MemDB{
		users:       make(map[string]*model.User),
		communities: make(map[string]*model.Community),
		posts:       make(map[string]*model.Post),
		comments:    make(map[string]*model.Comment),
		votes:       make(map[string]*model.Vote),
	}
}

func (mdb *MemDB) Close() error {
	return nil
}

// users

func (mdb *MemDB) CreateUser(_ context.Context, user *model.User) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, exists := mdb.users[user.Id]; exists {
		return fmt.Errorf("user %v already exists", user.Id)
	}
	clone := *user
	mdb.users[user.Id] = &clone
	return nil
}

func (mdb *MemDB) GetUserById(_ context.Context, id string) (*model.User, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	return cloneUser(mdb.users[id]), nil
}

func (mdb *MemDB) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	for _, user := range mdb.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	for _, user := range mdb.users {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) SetUserJoinedCommunities(_ context.Context, userId string, communityIds []string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	user, exists := mdb.users[userId]
	if !exists {
		return fmt.Errorf("user %v does not exist", userId)
	}
	user.JoinedCommunities = append([]string{}, communityIds...)
	return nil
}

// communities

func (mdb *MemDB) CreateCommunity(_ context.Context, community *model.Community) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, exists := mdb.communities[community.Id]; exists {
		return fmt.Errorf("community %v already exists", community.Id)
	}
	mdb.communities[community.Id] = cloneCommunity(community)
	return nil
}

func (mdb *MemDB) GetCommunityById(_ context.Context, id string) (*model.Community, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	if community, exists := mdb.communities[id]; exists {
		return cloneCommunity(community), nil
	}
	return nil, nil
}

func (mdb *MemDB) GetCommunityByName(_ context.Context, name string) (*model.Community, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	for _, community := range mdb.communities {
		if community.Name == name {
			return cloneCommunity(community), nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) GetCommunities(_ context.Context) ([]*model.Community, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	communities := []*model.Community{}
	for _, community := range mdb.communities {
		communities = append(communities, cloneCommunity(community))
	}
	return communities, nil
}

func (mdb *MemDB) GetCommunitiesForUser(_ context.Context, userId string) ([]*model.Community, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	communities := []*model.Community{}
	for _, community := range mdb.communities {
		if community.HasMember(userId) {
			communities = append(communities, cloneCommunity(community))
		}
	}
	return communities, nil
}

func (mdb *MemDB) SetCommunityMembers(_ context.Context, id string, members []string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	community, exists := mdb.communities[id]
	if !exists {
		return fmt.Errorf("community %v does not exist", id)
	}
	community.Members = append([]string{}, members...)
	return nil
}

func (mdb *MemDB) SetCommunityPostCount(_ context.Context, id string, count int) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	community, exists := mdb.communities[id]
	if !exists {
		return fmt.Errorf("community %v does not exist", id)
	}
	community.PostCount = count
	return nil
}

// posts

func (mdb *MemDB) CreatePost(_ context.Context, post *model.Post) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, exists := mdb.posts[post.Id]; exists {
		return fmt.Errorf("post %v already exists", post.Id)
	}
	mdb.posts[post.Id] = clonePost(post)
	return nil
}

func (mdb *MemDB) GetPostById(_ context.Context, id string) (*model.Post, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	if post, exists := mdb.posts[id]; exists {
		return clonePost(post), nil
	}
	return nil, nil
}

func (mdb *MemDB) GetPostsByCommunity(_ context.Context, communityId string) ([]*model.Post, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	posts := []*model.Post{}
	for _, post := range mdb.posts {
		if post.CommunityId == communityId {
			posts = append(posts, clonePost(post))
		}
	}
	return posts, nil
}

func (mdb *MemDB) GetPosts(_ context.Context, query *appdb.PostsListQuery) ([]*model.Post, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	posts := []*model.Post{}
	for _, post := range mdb.posts {
		if query.CommunityId != "" && post.CommunityId != query.CommunityId {
			continue
		}
		if query.From != nil {
			// strictly after the cursor position in (created_at desc, id desc)
			if post.CreatedAt.After(*query.From) {
				continue
			}
			if post.CreatedAt.Equal(*query.From) && post.Id >= query.LastId {
				continue
			}
		}
		posts = append(posts, clonePost(post))
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].Id > posts[j].Id
	})
	if query.Limit > 0 && len(posts) > query.Limit {
		posts = posts[:query.Limit]
	}
	return posts, nil
}

func (mdb *MemDB) SetPostVoteCounts(_ context.Context, id string, upvotes, downvotes int) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	post, exists := mdb.posts[id]
	if !exists {
		return fmt.Errorf("post %v does not exist", id)
	}
	post.Upvotes = upvotes
	post.Downvotes = downvotes
	return nil
}

func (mdb *MemDB) SetPostCommentCount(_ context.Context, id string, count int) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	post, exists := mdb.posts[id]
	if !exists {
		return fmt.Errorf("post %v does not exist", id)
	}
	post.CommentCount = count
	return nil
}

// comments

func (mdb *MemDB) CreateComment(_ context.Context, comment *model.Comment) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, exists := mdb.comments[comment.Id]; exists {
		return fmt.Errorf("comment %v already exists", comment.Id)
	}
	clone := *comment
	mdb.comments[comment.Id] = &clone
	return nil
}

func (mdb *MemDB) GetCommentById(_ context.Context, id string) (*model.Comment, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	if comment, exists := mdb.comments[id]; exists {
		clone := *comment
		return &clone, nil
	}
	return nil, nil
}

func (mdb *MemDB) GetCommentsForPost(_ context.Context, postId string) ([]*model.Comment, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	comments := []*model.Comment{}
	for _, comment := range mdb.comments {
		if comment.PostId == postId {
			clone := *comment
			comments = append(comments, &clone)
		}
	}
	return comments, nil
}

// votes

func (mdb *MemDB) CreateVote(_ context.Context, vote *model.Vote) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	if _, exists := mdb.votes[vote.Id]; exists {
		return fmt.Errorf("vote %v already exists", vote.Id)
	}
	clone := *vote
	mdb.votes[vote.Id] = &clone
	return nil
}

func (mdb *MemDB) GetVoteByPostAndUser(_ context.Context, postId, userId string) (*model.Vote, error) {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	for _, vote := range mdb.votes {
		if vote.PostId == postId && vote.UserId == userId {
			clone := *vote
			return &clone, nil
		}
	}
	return nil, nil
}

func (mdb *MemDB) SetVoteType(_ context.Context, id string, voteType model.VoteType) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	vote, exists := mdb.votes[id]
	if !exists {
		return fmt.Errorf("vote %v does not exist", id)
	}
	vote.VoteType = voteType
	return nil
}

func (mdb *MemDB) DeleteVote(_ context.Context, id string) error {
	mdb.mu.Lock()
	defer mdb.mu.Unlock()
	delete(mdb.votes, id)
	return nil
}

// VotesForPost is a test inspection helper; it is not part of db.Database.
func (mdb *MemDB) VotesForPost(postId string) []*model.Vote {
	mdb.mu.RLock()
	defer mdb.mu.RUnlock()
	votes := []*model.Vote{}
	for _, vote := range mdb.votes {
		if vote.PostId == postId {
			clone := *vote
			votes = append(votes, &clone)
		}
	}
	return votes
}

func cloneUser(user *model.User) *model.User {
	if user == nil {
		return nil
	}
	clone := *user
	clone.JoinedCommunities = append([]string{}, user.JoinedCommunities...)
	return &clone
}

func cloneCommunity(community *model.Community) *model.Community {
	clone := *community
	clone.Topics = append([]string{}, community.Topics...)
	clone.Members = append([]string{}, community.Members...)
	clone.Moderators = append([]string{}, community.Moderators...)
	return &clone
}

func clonePost(post *model.Post) *model.Post {
	clone := *post
	clone.Tags = append([]string{}, post.Tags...)
	clone.PollOptions = append([]string{}, post.PollOptions...)
	if post.PollResults != nil {
		clone.PollResults = make(map[string]int, len(post.PollResults))
		for option, count := range post.PollResults {
			clone.PollResults[option] = count
		}
	}
	return &clone
}
